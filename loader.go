// File: csvio/loader.go
package csvio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// fileConfiguration is the on-disk schema for writer configuration files.
// Encoding and policy are carried as names and parsed after decoding.
type fileConfiguration struct {
	FieldDelimiter *string  `mapstructure:"field_delimiter"`
	RowDelimiter   *string  `mapstructure:"row_delimiter"`
	Headers        []string `mapstructure:"headers"`
	Encoding       string   `mapstructure:"encoding"`
	BOMPolicy      string   `mapstructure:"bom_policy"`
}

// LoadConfiguration reads a writer Configuration from a TOML, YAML, or JSON
// file, chosen by extension. Values not present in the file keep their
// DefaultConfiguration defaults. A missing file returns ErrConfigNotFound,
// which callers may treat as non-fatal.
//
// Note that loading performs no validation beyond name parsing; the result
// may still fail Resolve, exactly like a hand-built Configuration.
func LoadConfiguration(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Configuration{}, ErrConfigNotFound
		}
		return Configuration{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".conf":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Configuration{}, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Configuration{}, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Configuration{}, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	default:
		return Configuration{}, fmt.Errorf("unsupported config file format '%s'", filepath.Ext(path))
	}

	return configurationFromMap(raw)
}

// configurationFromMap decodes a raw file map into a Configuration layered
// over the defaults.
func configurationFromMap(raw map[string]any) (Configuration, error) {
	var fc fileConfiguration
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Configuration{}, fmt.Errorf("failed to decode config values: %w", err)
	}

	cfg := DefaultConfiguration()
	if fc.FieldDelimiter != nil {
		cfg.FieldDelimiter = *fc.FieldDelimiter
	}
	if fc.RowDelimiter != nil {
		cfg.RowDelimiter = *fc.RowDelimiter
	}
	if fc.Headers != nil {
		cfg.Headers = fc.Headers
	}
	if fc.Encoding != "" {
		enc, err := ParseEncoding(fc.Encoding)
		if err != nil {
			return Configuration{}, err
		}
		cfg.Encoding = enc
	}
	if fc.BOMPolicy != "" {
		policy, err := ParseBOMPolicy(fc.BOMPolicy)
		if err != nil {
			return Configuration{}, err
		}
		cfg.BOMPolicy = policy
	}
	return cfg, nil
}

// ApplyEnv overrides configuration fields from environment variables.
// Variable names are the prefix followed by FIELD_DELIMITER, ROW_DELIMITER,
// HEADERS (comma-separated), ENCODING, and BOM_POLICY. Unset variables leave
// the corresponding field untouched.
func ApplyEnv(cfg Configuration, prefix string) (Configuration, error) {
	if v, ok := os.LookupEnv(prefix + "FIELD_DELIMITER"); ok {
		cfg.FieldDelimiter = v
	}
	if v, ok := os.LookupEnv(prefix + "ROW_DELIMITER"); ok {
		cfg.RowDelimiter = v
	}
	if v, ok := os.LookupEnv(prefix + "HEADERS"); ok {
		if v == "" {
			cfg.Headers = nil
		} else {
			cfg.Headers = strings.Split(v, ",")
		}
	}
	if v, ok := os.LookupEnv(prefix + "ENCODING"); ok {
		enc, err := ParseEncoding(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %sENCODING: %w", prefix, err)
		}
		cfg.Encoding = enc
	}
	if v, ok := os.LookupEnv(prefix + "BOM_POLICY"); ok {
		policy, err := ParseBOMPolicy(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %sBOM_POLICY: %w", prefix, err)
		}
		cfg.BOMPolicy = policy
	}
	return cfg, nil
}

// SaveConfiguration writes a Configuration to a TOML file atomically via a
// temporary file in the same directory.
func SaveConfiguration(path string, cfg Configuration) error {
	out := map[string]any{
		"field_delimiter": cfg.FieldDelimiter,
		"row_delimiter":   cfg.RowDelimiter,
		"bom_policy":      cfg.BOMPolicy.String(),
	}
	if len(cfg.Headers) > 0 {
		out["headers"] = cfg.Headers
	}
	if cfg.Encoding != EncodingUnspecified {
		out["encoding"] = cfg.Encoding.String()
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config to TOML: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in '%s': %w", dir, err)
	}
	tempFilePath := tempFile.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tempFilePath)
		}
	}()

	if _, err := tempFile.Write(buf.Bytes()); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempFilePath, err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempFilePath, err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempFilePath, err)
	}
	if err := os.Chmod(tempFilePath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on temp config file '%s': %w", tempFilePath, err)
	}
	if err := os.Rename(tempFilePath, path); err != nil {
		return fmt.Errorf("failed to rename temp file '%s' to '%s': %w", tempFilePath, path, err)
	}
	committed = true

	return nil
}
