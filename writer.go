// File: csvio/writer.go
package csvio

import (
	"bufio"
	"strings"

	"golang.org/x/text/transform"
)

const defaultBufferSize = 32 * 1024

// Writer emits CSV records to a Destination according to a resolved
// Settings. The Settings is produced exactly once, at construction, and
// drives the writer for its whole lifetime.
//
// Output is transcoded to the resolved encoding; the BOM, when one is
// selected, is written before the first record. A writer that never writes
// a record produces no output at all. The first error encountered is sticky:
// every later call reports it.
type Writer struct {
	dst      Destination
	settings *Settings

	enc     *transform.Writer
	out     *bufio.Writer
	started bool
	err     error
}

// NewWriter resolves cfg against the destination's encoding hint and returns
// a writer running on the resulting Settings. Resolution failures are
// returned as-is; no writer is constructed and nothing is written.
func NewWriter(dst Destination, cfg Configuration) (*Writer, error) {
	if dst == nil {
		return nil, errNilDestination
	}
	settings, err := Resolve(cfg, dst.EncodingHint())
	if err != nil {
		return nil, err
	}
	return &Writer{dst: dst, settings: settings}, nil
}

// Settings returns the resolved settings this writer runs on.
func (w *Writer) Settings() *Settings {
	return w.settings
}

// Write emits a single CSV record terminated with the row delimiter. On the
// first call it writes the BOM (if any) and the header row (if configured)
// before the record.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.err != nil {
		return w.err
	}
	if err := w.begin(); err != nil {
		return err
	}
	return w.writeRecord(record)
}

// WriteAll writes multiple records, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered data towards the destination. Use Close to also
// finalize the transcoder.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.err != nil {
		return w.err
	}
	if w.out == nil {
		return nil
	}
	if err := w.out.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Close flushes buffered data and finalizes the transcoder. It does not
// close the destination; file destinations commit separately via their own
// Close.
func (w *Writer) Close() error {
	if w == nil {
		return errNilWriter
	}
	if w.err != nil {
		return w.err
	}
	if w.out == nil {
		return nil
	}
	if err := w.out.Flush(); err != nil {
		w.err = err
		return err
	}
	if err := w.enc.Close(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

// begin sets up the output chain on first use: BOM bytes go raw to the
// destination, everything after passes through the encoding transcoder.
func (w *Writer) begin() error {
	if w.started {
		return nil
	}
	w.started = true

	if bom := w.settings.bom; len(bom) > 0 {
		if _, err := w.dst.Write(bom); err != nil {
			w.err = err
			return err
		}
	}
	w.enc = transform.NewWriter(w.dst, w.settings.encoding.codec().NewEncoder())
	w.out = bufio.NewWriterSize(w.enc, defaultBufferSize)

	if headers := w.settings.headers; len(headers) > 0 {
		if err := w.writeRecord(headers); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRecord(record []string) error {
	for i, field := range record {
		if i > 0 {
			if _, err := w.out.WriteString(w.settings.fieldDelimiter); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			w.err = err
			return err
		}
	}
	if _, err := w.out.WriteString(w.settings.rowDelimiter); err != nil {
		w.err = err
		return err
	}
	return nil
}

func (w *Writer) writeField(field string) error {
	if !w.fieldNeedsQuote(field) {
		_, err := w.out.WriteString(field)
		return err
	}
	if _, err := w.out.WriteRune(w.settings.quote); err != nil {
		return err
	}

	// Quote doubling. The quote is ASCII, so a byte scan cannot split a
	// multi-byte sequence.
	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == byte(w.settings.quote) {
			if start <= i {
				if _, err := w.out.WriteString(field[start : i+1]); err != nil {
					return err
				}
			}
			if _, err := w.out.WriteRune(w.settings.quote); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(field) {
		if _, err := w.out.WriteString(field[start:]); err != nil {
			return err
		}
	}
	if _, err := w.out.WriteRune(w.settings.quote); err != nil {
		return err
	}
	return nil
}

func (w *Writer) fieldNeedsQuote(field string) bool {
	return strings.ContainsRune(field, w.settings.quote) ||
		strings.Contains(field, w.settings.fieldDelimiter) ||
		strings.Contains(field, w.settings.rowDelimiter) ||
		strings.ContainsAny(field, "\r\n")
}
