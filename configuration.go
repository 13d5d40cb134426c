// File: csvio/configuration.go
package csvio

import (
	"fmt"
	"strings"
)

// BOMPolicy governs whether a byte order mark is prepended to output.
type BOMPolicy uint8

const (
	// BOMStandard writes a BOM only when the resolved encoding alone does
	// not tell a reader the byte order (unspecified-endianness 16/32-bit
	// Unicode forms). This is the default.
	BOMStandard BOMPolicy = iota
	// BOMNever suppresses the BOM for every encoding.
	BOMNever
	// BOMAlways writes a BOM for every Unicode encoding, including ones
	// whose byte order is already unambiguous. Non-Unicode encodings still
	// get none.
	BOMAlways
)

// String returns the policy name.
func (p BOMPolicy) String() string {
	switch p {
	case BOMStandard:
		return "standard"
	case BOMNever:
		return "never"
	case BOMAlways:
		return "always"
	default:
		return fmt.Sprintf("bompolicy(%d)", uint8(p))
	}
}

// ParseBOMPolicy converts a name to a BOMPolicy. Matching is case-insensitive.
func ParseBOMPolicy(name string) (BOMPolicy, error) {
	switch strings.ToLower(name) {
	case "standard":
		return BOMStandard, nil
	case "never":
		return BOMNever, nil
	case "always":
		return BOMAlways, nil
	default:
		return BOMStandard, fmt.Errorf("unknown BOM policy %q", name)
	}
}

// Configuration holds user-facing CSV writer preferences.
//
// No validation happens at this layer: invalid intermediate states can be
// constructed, inspected, and mutated freely. Validation is deferred to
// Resolve, which either produces a Settings or reports the first violated
// rule.
type Configuration struct {
	// FieldDelimiter separates fields within a row. Any non-empty sequence
	// of Unicode scalars.
	FieldDelimiter string
	// RowDelimiter separates rows. Must differ from FieldDelimiter.
	RowDelimiter string
	// Headers is the optional header row. Empty means no header row is
	// written.
	Headers []string
	// Encoding is the explicit output encoding. EncodingUnspecified means
	// "infer" from the destination, falling back to UTF-8.
	Encoding Encoding
	// BOMPolicy controls BOM emission for the resolved encoding.
	BOMPolicy BOMPolicy
}

// DefaultConfiguration returns the documented defaults: comma field
// delimiter, line-feed row delimiter, no headers, inferred encoding, and
// the standard BOM policy.
func DefaultConfiguration() Configuration {
	return Configuration{
		FieldDelimiter: ",",
		RowDelimiter:   "\n",
		BOMPolicy:      BOMStandard,
	}
}
