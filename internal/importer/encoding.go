package importer

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText decodes an uploaded export as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8. Latin-1 maps every byte, so decoding
// never fails past this point.
func DecodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// ISO 8859-1 has no invalid byte sequences; unreachable.
		return string(raw)
	}
	return string(decoded)
}
