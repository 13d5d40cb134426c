// File: csvio/encoding.go
package csvio

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding identifies a text encoding for CSV output.
// The zero value, EncodingUnspecified, means "no preference" and is treated
// as absent during resolution.
//
// Members are distinct identities, not canonical forms: EncodingUTF16,
// EncodingUTF16BE, and EncodingUnicode never compare equal to one another
// even though they can produce the same bytes on the wire.
type Encoding uint8

const (
	// EncodingUnspecified leaves the choice to the destination hint,
	// falling back to UTF-8.
	EncodingUnspecified Encoding = iota
	// EncodingUTF8 is 8-bit Unicode.
	EncodingUTF8
	// EncodingUTF16 is 16-bit Unicode with unspecified byte order.
	EncodingUTF16
	// EncodingUTF16LE is 16-bit Unicode, little-endian.
	EncodingUTF16LE
	// EncodingUTF16BE is 16-bit Unicode, big-endian.
	EncodingUTF16BE
	// EncodingUTF32 is 32-bit Unicode with unspecified byte order.
	EncodingUTF32
	// EncodingUTF32LE is 32-bit Unicode, little-endian.
	EncodingUTF32LE
	// EncodingUTF32BE is 32-bit Unicode, big-endian.
	EncodingUTF32BE
	// EncodingUnicode is the historical generic name for 16-bit Unicode text.
	EncodingUnicode
	// EncodingLatin1 is ISO 8859-1.
	EncodingLatin1
	// EncodingWindows1252 is the Windows-1252 code page.
	EncodingWindows1252
)

// encodingFamily groups members for BOM selection.
type encodingFamily uint8

const (
	familyOther encodingFamily = iota
	familyUTF8
	familyUTF16
	familyUTF32
)

// byteOrder is the declared endianness of a member, not the byte order the
// encoder ends up using.
type byteOrder uint8

const (
	orderUnspecified byteOrder = iota
	orderLittle
	orderBig
)

// classify maps a member to the (family, endianness) pair the BOM table is
// keyed on. EncodingUnicode classifies with the unspecified-endianness
// 16-bit forms.
func (e Encoding) classify() (encodingFamily, byteOrder) {
	switch e {
	case EncodingUTF8:
		return familyUTF8, orderUnspecified
	case EncodingUTF16, EncodingUnicode:
		return familyUTF16, orderUnspecified
	case EncodingUTF16LE:
		return familyUTF16, orderLittle
	case EncodingUTF16BE:
		return familyUTF16, orderBig
	case EncodingUTF32:
		return familyUTF32, orderUnspecified
	case EncodingUTF32LE:
		return familyUTF32, orderLittle
	case EncodingUTF32BE:
		return familyUTF32, orderBig
	default:
		return familyOther, orderUnspecified
	}
}

// String returns the canonical lowercase name.
func (e Encoding) String() string {
	switch e {
	case EncodingUnspecified:
		return "unspecified"
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF16:
		return "utf-16"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	case EncodingUTF32:
		return "utf-32"
	case EncodingUTF32LE:
		return "utf-32le"
	case EncodingUTF32BE:
		return "utf-32be"
	case EncodingUnicode:
		return "unicode"
	case EncodingLatin1:
		return "latin1"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// ParseEncoding converts a name to an Encoding. Matching is
// case-insensitive and ignores dashes, underscores, and spaces, so
// "UTF-8", "utf8", and "utf_8" are all accepted.
func ParseEncoding(name string) (Encoding, error) {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	switch normalized {
	case "utf8":
		return EncodingUTF8, nil
	case "utf16":
		return EncodingUTF16, nil
	case "utf16le":
		return EncodingUTF16LE, nil
	case "utf16be":
		return EncodingUTF16BE, nil
	case "utf32":
		return EncodingUTF32, nil
	case "utf32le":
		return EncodingUTF32LE, nil
	case "utf32be":
		return EncodingUTF32BE, nil
	case "unicode":
		return EncodingUnicode, nil
	case "latin1", "iso88591":
		return EncodingLatin1, nil
	case "windows1252", "cp1252":
		return EncodingWindows1252, nil
	default:
		return EncodingUnspecified, fmt.Errorf("unknown encoding name %q", name)
	}
}

// codec returns the x/text codec used to transcode writer output.
// Unspecified-endianness 16/32-bit forms and the generic Unicode alias
// encode big-endian, matching the BOM selected for them. BOM insertion is
// handled by the writer, never by the codec.
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16, EncodingUTF16BE, EncodingUnicode:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case EncodingUTF32, EncodingUTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case EncodingLatin1:
		return charmap.ISO8859_1
	case EncodingWindows1252:
		return charmap.Windows1252
	default:
		return unicode.UTF8
	}
}
