// File: csvio/builder.go
package csvio

import "fmt"

// Builder provides a fluent interface for assembling a Configuration and
// resolving it into Settings.
type Builder struct {
	cfg  Configuration
	hint Encoding
}

// NewBuilder creates a builder seeded with DefaultConfiguration.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfiguration()}
}

// WithDelimiters sets both delimiters at once.
func (b *Builder) WithDelimiters(field, row string) *Builder {
	b.cfg.FieldDelimiter = field
	b.cfg.RowDelimiter = row
	return b
}

// WithFieldDelimiter sets the field delimiter.
func (b *Builder) WithFieldDelimiter(d string) *Builder {
	b.cfg.FieldDelimiter = d
	return b
}

// WithRowDelimiter sets the row delimiter.
func (b *Builder) WithRowDelimiter(d string) *Builder {
	b.cfg.RowDelimiter = d
	return b
}

// WithHeaders sets the header row. Calling with no arguments clears it.
func (b *Builder) WithHeaders(headers ...string) *Builder {
	b.cfg.Headers = headers
	return b
}

// WithEncoding sets the explicit output encoding.
func (b *Builder) WithEncoding(enc Encoding) *Builder {
	b.cfg.Encoding = enc
	return b
}

// WithBOMPolicy sets the BOM emission policy.
func (b *Builder) WithBOMPolicy(p BOMPolicy) *Builder {
	b.cfg.BOMPolicy = p
	return b
}

// WithEncodingHint sets the destination encoding hint passed to Resolve.
// Leave unset when the destination has no pre-existing encoding.
func (b *Builder) WithEncodingHint(enc Encoding) *Builder {
	b.hint = enc
	return b
}

// Configuration returns a snapshot of the configuration built so far.
func (b *Builder) Configuration() Configuration {
	cfg := b.cfg
	cfg.Headers = append([]string(nil), b.cfg.Headers...)
	return cfg
}

// Build resolves the assembled Configuration into Settings.
func (b *Builder) Build() (*Settings, error) {
	return Resolve(b.cfg, b.hint)
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Settings {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("csvio: settings build failed: %v", err))
	}
	return s
}
