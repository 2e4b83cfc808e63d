// Package editor ties the buffer, the key-repeat scheduler and the command
// dispatcher into a Session driven by one Tick per frame.
//
// A Session owns exactly one buffer and, optionally, the file it was
// loaded from. The host feeds it Frames and draws its Snapshots:
//
//	s := editor.New()
//	if err := s.Open("notes.txt"); err != nil && !errors.Is(err, document.ErrNotFound) {
//	    return err
//	}
//	for !s.Done() {
//	    s.Tick(nextFrame())
//	    draw(s.Snapshot())
//	}
//
// Sessions are not safe for concurrent use.
package editor
