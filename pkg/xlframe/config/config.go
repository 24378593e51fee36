// Package config loads read/write presets for the xlframe CLI from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/ukaji3/xlframe-go/pkg/xlframe"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Profile holds all xlframe configuration.
type Profile struct {
	Read    ReadConfig    `yaml:"read"`
	Write   WriteConfig   `yaml:"write"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReadConfig mirrors xlframe.ReadOptions.
type ReadConfig struct {
	SheetName         string   `yaml:"sheet_name"`
	SheetID           int      `yaml:"sheet_id"`
	InferSchemaLength *int     `yaml:"infer_schema_length"`
	HasHeader         *bool    `yaml:"has_header"`
	Columns           []string `yaml:"columns"`
	DropEmptyRows     bool     `yaml:"drop_empty_rows"`
	DropEmptyCols     bool     `yaml:"drop_empty_cols"`
	RaiseIfEmpty      bool     `yaml:"raise_if_empty"`
}

// WriteConfig mirrors xlframe.WriteOptions.
type WriteConfig struct {
	SheetNames     []string `yaml:"sheet_names"`
	IncludeHeader  *bool    `yaml:"include_header"`
	AutofitColumns *bool    `yaml:"autofit_columns"`
	Table          *bool    `yaml:"table"`
	TableStyle     string   `yaml:"table_style"`
	Header         string   `yaml:"header"`
	Footer         string   `yaml:"footer"`
	PrintArea      bool     `yaml:"print_area"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// Default returns the built-in profile.
func Default() *Profile {
	return &Profile{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a profile from path on top of the defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return p, nil
}

// Validate checks value ranges.
func (p *Profile) Validate() error {
	if p.Read.InferSchemaLength != nil && *p.Read.InferSchemaLength < 0 {
		return fmt.Errorf("read.infer_schema_length must be >= 0, got %d", *p.Read.InferSchemaLength)
	}
	if p.Read.SheetID < 0 {
		return fmt.Errorf("read.sheet_id must be >= 0, got %d", p.Read.SheetID)
	}
	if p.Read.SheetName != "" && p.Read.SheetID != 0 {
		return xlframe.ErrConflictingSheetSelector
	}
	if _, err := p.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses logging.level, defaulting to info.
func (p *Profile) Level() (zapcore.Level, error) {
	if p.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(p.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

// ReadOptions converts the read section into library options.
func (p *Profile) ReadOptions() xlframe.ReadOptions {
	return xlframe.ReadOptions{
		SheetName:         p.Read.SheetName,
		SheetID:           p.Read.SheetID,
		InferSchemaLength: p.Read.InferSchemaLength,
		HasHeader:         p.Read.HasHeader,
		Columns:           p.Read.Columns,
		DropEmptyRows:     p.Read.DropEmptyRows,
		DropEmptyCols:     p.Read.DropEmptyCols,
		RaiseIfEmpty:      p.Read.RaiseIfEmpty,
	}
}

// WriteOptions converts the write section into library options.
func (p *Profile) WriteOptions() xlframe.WriteOptions {
	return xlframe.WriteOptions{
		SheetNames:     p.Write.SheetNames,
		IncludeHeader:  p.Write.IncludeHeader,
		AutofitColumns: p.Write.AutofitColumns,
		Table:          p.Write.Table,
		TableStyle:     p.Write.TableStyle,
		Header:         p.Write.Header,
		Footer:         p.Write.Footer,
		PrintArea:      p.Write.PrintArea,
	}
}
