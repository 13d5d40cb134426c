// File: csvio/settings.go
package csvio

// quoteScalar is the fixed escaping character. It is not configurable.
const quoteScalar = '"'

// BOM byte sequences per encoding form.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// Settings is the validated, immutable form of a Configuration, consumed by
// the writing engine. A Settings is produced exactly once per writer, at
// construction time, and is never mutated afterwards. Accessors returning
// slices return copies so no caller can alias the internal state.
type Settings struct {
	fieldDelimiter string
	rowDelimiter   string
	headers        []string
	quote          rune
	encoding       Encoding
	bom            []byte
}

// FieldDelimiter returns the resolved field delimiter. Never empty.
func (s *Settings) FieldDelimiter() string { return s.fieldDelimiter }

// RowDelimiter returns the resolved row delimiter. Never empty and never
// equal to the field delimiter.
func (s *Settings) RowDelimiter() string { return s.rowDelimiter }

// Headers returns a copy of the header row. Empty means no header row.
func (s *Settings) Headers() []string {
	return append([]string(nil), s.headers...)
}

// Quote returns the escaping character, always the double quote.
func (s *Settings) Quote() rune { return s.quote }

// Encoding returns the resolved output encoding.
func (s *Settings) Encoding() Encoding { return s.encoding }

// BOM returns a copy of the byte order mark to prepend to output. Empty when
// no BOM is to be written.
func (s *Settings) BOM() []byte {
	return append([]byte(nil), s.bom...)
}

// Resolve validates a Configuration against an optional destination encoding
// hint and produces the Settings a writer runs on. Pass EncodingUnspecified
// as hint when the destination has no pre-existing encoding.
//
// Resolution is pure and deterministic; identical inputs always yield the
// identical outcome. Checks run in a fixed order and the first violated rule
// determines the error:
//
//  1. Headers are copied verbatim, unvalidated.
//  2. Delimiters: an empty delimiter fails with ErrEmptyDelimiter; identical
//     delimiters fail with *IdenticalDelimitersError.
//  3. Encoding: the explicit encoding wins when it is the only one present,
//     the hint wins when it is, UTF-8 when neither is, and agreement when
//     both are. Disagreement fails with *EncodingConflictError. Distinct
//     members are never reconciled, so EncodingUnicode against
//     EncodingUTF16BE is a conflict even though both encode the same bytes.
//  4. The BOM is selected from the resolved encoding and the BOM policy.
//
// On failure no Settings is returned; the caller must correct the
// Configuration, as retrying with the same inputs recurs identically.
func Resolve(cfg Configuration, hint Encoding) (*Settings, error) {
	s := &Settings{
		headers: append([]string(nil), cfg.Headers...),
		quote:   quoteScalar,
	}

	if cfg.FieldDelimiter == "" || cfg.RowDelimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	if cfg.FieldDelimiter == cfg.RowDelimiter {
		return nil, &IdenticalDelimitersError{Delimiter: cfg.FieldDelimiter}
	}
	s.fieldDelimiter = cfg.FieldDelimiter
	s.rowDelimiter = cfg.RowDelimiter

	switch {
	case cfg.Encoding != EncodingUnspecified && hint == EncodingUnspecified:
		s.encoding = cfg.Encoding
	case cfg.Encoding == EncodingUnspecified && hint != EncodingUnspecified:
		s.encoding = hint
	case cfg.Encoding == EncodingUnspecified && hint == EncodingUnspecified:
		s.encoding = EncodingUTF8
	case cfg.Encoding == hint:
		s.encoding = cfg.Encoding
	default:
		return nil, &EncodingConflictError{Configured: cfg.Encoding, Hint: hint}
	}

	s.bom = bomFor(cfg.BOMPolicy, s.encoding)
	return s, nil
}

// bomKey is the full dispatch tuple for BOM selection.
type bomKey struct {
	policy BOMPolicy
	family encodingFamily
	order  byteOrder
}

// bomFor is total over (policy, family, endianness): every combination not
// named below falls through to the single empty-BOM arm. That covers
// BOMNever for everything, BOMStandard for byte-order-unambiguous and
// non-Unicode encodings, and BOMAlways for non-Unicode encodings.
func bomFor(policy BOMPolicy, enc Encoding) []byte {
	f, o := enc.classify()
	switch (bomKey{policy, f, o}) {
	case bomKey{BOMAlways, familyUTF8, orderUnspecified}:
		return bomUTF8
	case bomKey{BOMAlways, familyUTF16, orderLittle}:
		return bomUTF16LE
	case bomKey{BOMAlways, familyUTF16, orderBig},
		bomKey{BOMAlways, familyUTF16, orderUnspecified},
		bomKey{BOMStandard, familyUTF16, orderUnspecified}:
		return bomUTF16BE
	case bomKey{BOMAlways, familyUTF32, orderLittle}:
		return bomUTF32LE
	case bomKey{BOMAlways, familyUTF32, orderBig},
		bomKey{BOMAlways, familyUTF32, orderUnspecified},
		bomKey{BOMStandard, familyUTF32, orderUnspecified}:
		return bomUTF32BE
	default:
		return nil
	}
}
