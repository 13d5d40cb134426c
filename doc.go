// File: csvio/doc.go

// Package csvio writes CSV with validated delimiters, explicit text
// encodings, and byte-order-mark control.
//
// Features:
//   - User-facing Configuration with sensible defaults and no up-front
//     validation; invalid states stay constructible and inspectable
//   - Single-shot resolution into an immutable Settings with typed,
//     recoverable errors for empty delimiters, identical delimiters, and
//     encoding conflicts
//   - Encoding reconciliation between an explicit preference and a
//     destination-supplied hint, defaulting to UTF-8
//   - BOM selection as a total function of policy and encoding
//   - Buffered writing engine with RFC 4180 quote doubling, transcoding via
//     golang.org/x/text, and lazy BOM emission
//   - Configuration loading from TOML, YAML, or JSON files with environment
//     variable overrides
//   - Builder pattern for easy initialization
//
// Quick Start:
//
//	dst := csvio.NewBuffer()
//	w, err := csvio.NewWriter(dst, csvio.DefaultConfiguration())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Write([]string{"id", "name"})
//	w.Write([]string{"1", `say "hi"`})
//	if err := w.Close(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(dst.String())
//
// Resolution:
//
// A Configuration plus an optional destination encoding hint resolves into
// a Settings exactly once per writer, at construction. Checks run in a fixed
// order and the first violated rule determines the error, so a malformed
// Configuration always reports the same failure. The resulting Settings is
// never mutated and never shared between writers; concurrent writers each
// resolve their own.
//
// Custom configuration:
//
//	settings, err := csvio.NewBuilder().
//	    WithDelimiters(";", "\r\n").
//	    WithHeaders("sku", "price").
//	    WithEncoding(csvio.EncodingUTF16LE).
//	    WithBOMPolicy(csvio.BOMAlways).
//	    Build()
package csvio
