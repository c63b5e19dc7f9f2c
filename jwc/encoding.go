package jwc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the character set of an exchange file.
type Encoding string

const (
	ShiftJIS Encoding = "sjis" // what the CAD host reads and writes
	UTF8     Encoding = "utf8" // for inspection with ordinary tools
)

// ParseEncoding accepts the names of an Encoding, ignoring case.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sjis", "shift-jis", "shift_jis", "":
		return ShiftJIS, nil
	case "utf8", "utf-8":
		return UTF8, nil
	}
	return "", fmt.Errorf("unknown exchange file encoding %q", s)
}

// charset returns the x/text encoding for e. Unknown encodings fall back to
// Shift-JIS.
func (e Encoding) charset() encoding.Encoding {
	if e == UTF8 {
		return unicode.UTF8
	}
	return japanese.ShiftJIS
}

// encoder substitutes characters the charset cannot represent.
func (e Encoding) encoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(e.charset().NewEncoder())
}

func (e Encoding) decoder() *encoding.Decoder {
	return e.charset().NewDecoder()
}
