// Package document loads and saves the text edited by a session.
//
// Load reads a file through a FileSystem, strips a UTF-8 or UTF-16 byte
// order mark, decodes UTF-16 to UTF-8, normalizes CRLF and CR line endings
// to LF and validates the result as UTF-8. The detected Format is kept so
// Save can write the text back in the form it was read.
//
// Save writes to a temporary file next to the target and renames it into
// place, so a failed save never truncates the original.
package document
