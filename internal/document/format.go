package document

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian with BOM.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian with BOM.
	EncodingUTF16BE Encoding = "utf-16be"
)

// LineEnding represents the line ending style.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"

	// LineEndingCR is old Mac-style line ending (\r).
	LineEndingCR LineEnding = "cr"
)

// Format is how a document is stored on disk.
type Format struct {
	Encoding   Encoding
	LineEnding LineEnding
}

// DefaultFormat is used for new files: UTF-8 without BOM, LF line endings.
func DefaultFormat() Format {
	return Format{Encoding: EncodingUTF8, LineEnding: LineEndingLF}
}

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding detects the encoding from a byte order mark, defaulting
// to UTF-8.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, bomUTF16BE):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

// DetectLineEnding returns the most frequent line ending in text, LF when
// there are none. Ties prefer LF, then CRLF.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf, cr int

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				crlf++
				i++ // Skip the \n
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}

	switch {
	case crlf > lf && crlf >= cr:
		return LineEndingCRLF
	case cr > lf && cr > crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// NormalizeLineEndings converts CRLF and lone CR to LF.
func NormalizeLineEndings(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\r' {
			if i+1 < len(text) && text[i+1] == '\n' {
				i++ // Skip the \n
			}
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// ApplyLineEnding converts LF line endings in text to ending.
func ApplyLineEnding(text string, ending LineEnding) string {
	switch ending {
	case LineEndingCRLF:
		return strings.ReplaceAll(text, "\n", "\r\n")
	case LineEndingCR:
		return strings.ReplaceAll(text, "\n", "\r")
	default:
		return text
	}
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		return encoding.Nop
	}
}

// Decode converts file content to normalized UTF-8 text and reports the
// format it was stored in. The returned offset is the byte position of the
// first invalid UTF-8 sequence when the content does not decode.
func Decode(content []byte) (string, Format, int, error) {
	format := Format{Encoding: DetectEncoding(content)}

	var decoded []byte
	switch format.Encoding {
	case EncodingUTF16LE, EncodingUTF16BE:
		var err error
		decoded, err = format.Encoding.codec().NewDecoder().Bytes(content)
		if err != nil {
			return "", format, 0, err
		}
	case EncodingUTF8BOM:
		decoded = content[len(bomUTF8):]
	default:
		decoded = content
	}

	if off := invalidUTF8(decoded); off >= 0 {
		if format.Encoding == EncodingUTF8BOM {
			off += len(bomUTF8)
		}
		return "", format, off, ErrDecode
	}

	text := string(decoded)
	format.LineEnding = DetectLineEnding(text)
	return NormalizeLineEndings(text), format, 0, nil
}

// Encode converts LF-normalized text to file content in format.
func Encode(text string, format Format) ([]byte, error) {
	text = ApplyLineEnding(text, format.LineEnding)
	if format.Encoding == "" || format.Encoding == EncodingUTF8 {
		return []byte(text), nil
	}
	return format.Encoding.codec().NewEncoder().Bytes([]byte(text))
}

// invalidUTF8 returns the offset of the first invalid UTF-8 sequence, or -1.
func invalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
