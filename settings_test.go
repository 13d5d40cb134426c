// File: csvio/settings_test.go
package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveDefaults tests the end-to-end default scenario
func TestResolveDefaults(t *testing.T) {
	s, err := Resolve(DefaultConfiguration(), EncodingUnspecified)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, ",", s.FieldDelimiter())
	assert.Equal(t, "\n", s.RowDelimiter())
	assert.Empty(t, s.Headers())
	assert.Equal(t, '"', s.Quote())
	assert.Equal(t, EncodingUTF8, s.Encoding())
	assert.Empty(t, s.BOM())
}

// TestResolveDelimiterValidation tests delimiter checks and preservation
func TestResolveDelimiterValidation(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		row       string
		wantEmpty bool
		wantSame  bool
	}{
		{"EmptyField", "", "\n", true, false},
		{"EmptyRow", ",", "", true, false},
		{"BothEmpty", "", "", true, false}, // empty check wins over identical
		{"Identical", ";", ";", false, true},
		{"IdenticalMultiScalar", "||", "||", false, true},
		{"ValidDefault", ",", "\n", false, false},
		{"ValidMultiScalar", "||", "\r\n", false, false},
		{"ValidUnicode", "→", "¶", false, false},
		{"ValidTab", "\t", "\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			cfg.FieldDelimiter = tt.field
			cfg.RowDelimiter = tt.row

			s, err := Resolve(cfg, EncodingUnspecified)
			switch {
			case tt.wantEmpty:
				require.ErrorIs(t, err, ErrEmptyDelimiter)
				assert.Nil(t, s)
			case tt.wantSame:
				var identical *IdenticalDelimitersError
				require.ErrorAs(t, err, &identical)
				assert.Equal(t, tt.field, identical.Delimiter)
				assert.Nil(t, s)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.field, s.FieldDelimiter())
				assert.Equal(t, tt.row, s.RowDelimiter())
			}
		})
	}
}

// TestResolveEncoding tests reconciliation of explicit encoding and hint
func TestResolveEncoding(t *testing.T) {
	tests := []struct {
		name         string
		explicit     Encoding
		hint         Encoding
		want         Encoding
		wantConflict bool
	}{
		{"ExplicitOnly", EncodingUTF16LE, EncodingUnspecified, EncodingUTF16LE, false},
		{"HintOnly", EncodingUnspecified, EncodingLatin1, EncodingLatin1, false},
		{"NeitherDefaultsUTF8", EncodingUnspecified, EncodingUnspecified, EncodingUTF8, false},
		{"BothEqual", EncodingUTF32BE, EncodingUTF32BE, EncodingUTF32BE, false},
		{"BothUnequal", EncodingUTF8, EncodingUTF16LE, EncodingUnspecified, true},
		{"UnicodeVsUTF16BE", EncodingUnicode, EncodingUTF16BE, EncodingUnspecified, true},
		{"UTF16VsUTF16LE", EncodingUTF16, EncodingUTF16LE, EncodingUnspecified, true},
		{"UTF32VsUTF32BE", EncodingUTF32, EncodingUTF32BE, EncodingUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			cfg.Encoding = tt.explicit

			s, err := Resolve(cfg, tt.hint)
			if tt.wantConflict {
				var conflict *EncodingConflictError
				require.ErrorAs(t, err, &conflict)
				assert.Equal(t, tt.explicit, conflict.Configured)
				assert.Equal(t, tt.hint, conflict.Hint)
				assert.Nil(t, s)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, s.Encoding())
			}
		})
	}
}

// TestResolveFailFastOrder tests that the first violated rule wins
func TestResolveFailFastOrder(t *testing.T) {
	t.Run("EmptyDelimiterBeforeEncoding", func(t *testing.T) {
		cfg := DefaultConfiguration()
		cfg.FieldDelimiter = ""
		cfg.Encoding = EncodingUTF8

		_, err := Resolve(cfg, EncodingUTF16LE) // would also conflict
		assert.ErrorIs(t, err, ErrEmptyDelimiter)
	})

	t.Run("IdenticalDelimitersBeforeEncoding", func(t *testing.T) {
		cfg := DefaultConfiguration()
		cfg.FieldDelimiter = ";"
		cfg.RowDelimiter = ";"
		cfg.Encoding = EncodingUTF8

		_, err := Resolve(cfg, EncodingUTF16LE)
		var identical *IdenticalDelimitersError
		assert.ErrorAs(t, err, &identical)
	})
}

// TestResolveBOMSelection tests the complete policy × encoding table
func TestResolveBOMSelection(t *testing.T) {
	tests := []struct {
		name     string
		policy   BOMPolicy
		encoding Encoding
		want     []byte
	}{
		{"AlwaysUTF8", BOMAlways, EncodingUTF8, []byte{0xEF, 0xBB, 0xBF}},
		{"AlwaysUTF16LE", BOMAlways, EncodingUTF16LE, []byte{0xFF, 0xFE}},
		{"AlwaysUTF16BE", BOMAlways, EncodingUTF16BE, []byte{0xFE, 0xFF}},
		{"AlwaysUTF16", BOMAlways, EncodingUTF16, []byte{0xFE, 0xFF}},
		{"AlwaysUnicode", BOMAlways, EncodingUnicode, []byte{0xFE, 0xFF}},
		{"AlwaysUTF32LE", BOMAlways, EncodingUTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
		{"AlwaysUTF32BE", BOMAlways, EncodingUTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
		{"AlwaysUTF32", BOMAlways, EncodingUTF32, []byte{0x00, 0x00, 0xFE, 0xFF}},
		{"AlwaysLatin1", BOMAlways, EncodingLatin1, nil},
		{"AlwaysWindows1252", BOMAlways, EncodingWindows1252, nil},
		{"StandardUTF16", BOMStandard, EncodingUTF16, []byte{0xFE, 0xFF}},
		{"StandardUnicode", BOMStandard, EncodingUnicode, []byte{0xFE, 0xFF}},
		{"StandardUTF32", BOMStandard, EncodingUTF32, []byte{0x00, 0x00, 0xFE, 0xFF}},
		{"StandardUTF8", BOMStandard, EncodingUTF8, nil},
		{"StandardUTF16LE", BOMStandard, EncodingUTF16LE, nil},
		{"StandardUTF16BE", BOMStandard, EncodingUTF16BE, nil},
		{"StandardUTF32LE", BOMStandard, EncodingUTF32LE, nil},
		{"StandardUTF32BE", BOMStandard, EncodingUTF32BE, nil},
		{"StandardLatin1", BOMStandard, EncodingLatin1, nil},
		{"NeverUTF8", BOMNever, EncodingUTF8, nil},
		{"NeverUTF16", BOMNever, EncodingUTF16, nil},
		{"NeverUTF32LE", BOMNever, EncodingUTF32LE, nil},
		{"NeverUnicode", BOMNever, EncodingUnicode, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			cfg.Encoding = tt.encoding
			cfg.BOMPolicy = tt.policy

			s, err := Resolve(cfg, EncodingUnspecified)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, s.BOM())
			} else {
				assert.Equal(t, tt.want, s.BOM())
			}
		})
	}
}

// TestResolveDeterministic tests that identical inputs yield identical outcomes
func TestResolveDeterministic(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Headers = []string{"a", "b"}
	cfg.Encoding = EncodingUTF16
	cfg.BOMPolicy = BOMStandard

	first, err1 := Resolve(cfg, EncodingUnspecified)
	second, err2 := Resolve(cfg, EncodingUnspecified)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, *first, *second)

	bad := DefaultConfiguration()
	bad.Encoding = EncodingUTF8
	_, errA := Resolve(bad, EncodingLatin1)
	_, errB := Resolve(bad, EncodingLatin1)
	require.Error(t, errA)
	require.Error(t, errB)
	assert.Equal(t, errA.Error(), errB.Error())
}

// TestSettingsImmutability tests that Settings cannot be aliased from outside
func TestSettingsImmutability(t *testing.T) {
	headers := []string{"a", "b"}
	cfg := DefaultConfiguration()
	cfg.Headers = headers
	cfg.Encoding = EncodingUTF8
	cfg.BOMPolicy = BOMAlways

	s, err := Resolve(cfg, EncodingUnspecified)
	require.NoError(t, err)

	// Mutating the input slice after resolution changes nothing.
	headers[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Headers())

	// Accessors hand out copies.
	got := s.Headers()
	got[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Headers())

	bom := s.BOM()
	bom[0] = 0x00
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, s.BOM())
}
