package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"jsfmt/internal/format"
)

// formatConfig mirrors the [format] table of jsfmt.toml. Every key is
// optional; unset keys keep the built-in defaults.
type formatConfig struct {
	Format formatTable `toml:"format"`
}

type formatTable struct {
	IndentSize int    `toml:"indent_size"`
	IndentType string `toml:"indent_type"`
	Quotes     string `toml:"quotes"`

	SpaceAfterKeywords       bool `toml:"space_after_keywords"`
	SpaceBeforeFunctionParen bool `toml:"space_before_function_paren"`
	SpaceAfterFunctionParen  bool `toml:"space_after_function_paren"`
	SpaceBeforeOpeningBrace  bool `toml:"space_before_opening_brace"`

	NewlineBeforeOpeningBrace bool `toml:"newline_before_opening_brace"`
	NewlineAfterOpeningBrace  bool `toml:"newline_after_opening_brace"`
	NewlineBeforeClosingBrace bool `toml:"newline_before_closing_brace"`

	PreserveComments   bool `toml:"preserve_comments"`
	PreserveEmptyLines bool `toml:"preserve_empty_lines"`
	AddSemicolons      bool `toml:"add_semicolons"`
	TrailingCommas     bool `toml:"trailing_commas"`
	Validate           bool `toml:"validate"`
}

// findConfigFile walks up from startDir looking for jsfmt.toml.
func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "jsfmt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadOptions builds the formatting configuration: built-in defaults,
// overlaid by jsfmt.toml (if found walking up from startDir).
func loadOptions(startDir string) (format.Options, string, error) {
	opts := format.Default()

	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return opts, "", err
	}

	var cfg formatConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return opts, path, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return opts, path, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if err := applyConfig(&opts, &cfg, meta, path); err != nil {
		return opts, path, err
	}
	return opts, path, nil
}

func applyConfig(opts *format.Options, cfg *formatConfig, meta toml.MetaData, path string) error {
	defined := func(key string) bool { return meta.IsDefined("format", key) }

	if defined("indent_size") {
		if cfg.Format.IndentSize < 1 {
			return fmt.Errorf("%s: indent_size must be at least 1", path)
		}
		opts.IndentSize = cfg.Format.IndentSize
	}
	if defined("indent_type") {
		it, err := parseIndentType(cfg.Format.IndentType)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		opts.IndentType = it
	}
	if defined("quotes") {
		qs, err := parseQuoteStyle(cfg.Format.Quotes)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		opts.QuoteStyle = qs
	}

	if defined("space_after_keywords") {
		opts.InsertSpaceAfterKeywords = cfg.Format.SpaceAfterKeywords
	}
	if defined("space_before_function_paren") {
		opts.InsertSpaceBeforeFunctionParen = cfg.Format.SpaceBeforeFunctionParen
	}
	if defined("space_after_function_paren") {
		opts.InsertSpaceAfterFunctionParen = cfg.Format.SpaceAfterFunctionParen
	}
	if defined("space_before_opening_brace") {
		opts.InsertSpaceBeforeOpeningBrace = cfg.Format.SpaceBeforeOpeningBrace
	}
	if defined("newline_before_opening_brace") {
		opts.InsertNewLineBeforeOpeningBrace = cfg.Format.NewlineBeforeOpeningBrace
	}
	if defined("newline_after_opening_brace") {
		opts.InsertNewLineAfterOpeningBrace = cfg.Format.NewlineAfterOpeningBrace
	}
	if defined("newline_before_closing_brace") {
		opts.InsertNewLineBeforeClosingBrace = cfg.Format.NewlineBeforeClosingBrace
	}
	if defined("preserve_comments") {
		opts.PreserveComments = cfg.Format.PreserveComments
	}
	if defined("preserve_empty_lines") {
		opts.PreserveEmptyLines = cfg.Format.PreserveEmptyLines
	}
	if defined("add_semicolons") {
		opts.AddSemicolons = cfg.Format.AddSemicolons
	}
	if defined("trailing_commas") {
		opts.TrailingCommas = cfg.Format.TrailingCommas
	}
	if defined("validate") {
		opts.ValidateSyntax = cfg.Format.Validate
	}
	return nil
}

func parseIndentType(value string) (format.IndentType, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "spaces":
		return format.IndentSpaces, nil
	case "tabs":
		return format.IndentTabs, nil
	default:
		return format.IndentSpaces, fmt.Errorf("invalid indent_type %q (expected spaces|tabs)", value)
	}
}

func parseQuoteStyle(value string) (format.QuoteStyle, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "preserve":
		return format.QuotePreserve, nil
	case "single":
		return format.QuoteSingle, nil
	case "double":
		return format.QuoteDouble, nil
	default:
		return format.QuotePreserve, fmt.Errorf("invalid quotes %q (expected preserve|single|double)", value)
	}
}
