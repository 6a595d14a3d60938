// Package config resolves the verifier's configuration: the structured
// `comment` input, the comment template file, and optional .env files for
// local runs. Precedence is always: CLI flag > action input > default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultTemplatePath is the comment template looked up when no filename is configured.
// Relative paths resolve against the working directory (the repository checkout).
const DefaultTemplatePath = ".github/VERIFY_PR_COMMENT_TEMPLATE.md"

// MessageSource records where a comment body came from
type MessageSource string

const (
	SourceInline   MessageSource = "inline"
	SourceTemplate MessageSource = "template"
	SourceFallback MessageSource = "fallback"
)

// CommentConfig is the decoded `comment` input.
//
// The input accepts either a YAML boolean ("true") that only toggles posting,
// or a mapping:
//
//	enabled: true
//	body: true
//	message: Please link an issue.
//
// An empty input disables commenting.
type CommentConfig struct {
	// Enabled turns on posting a comment when no linked issue is found
	Enabled bool `yaml:"enabled"`
	// Body selects Message as the comment body instead of the template file
	Body bool `yaml:"body"`
	// Message is the inline comment body
	Message string `yaml:"message"`
}

// ParseComment decodes and validates the raw `comment` input
func ParseComment(raw string) (*CommentConfig, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &CommentConfig{}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("invalid comment input: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("invalid comment input: expected a boolean or a mapping")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := root.Decode(&enabled); err != nil {
			return nil, fmt.Errorf("invalid comment input %q: expected a boolean or a mapping", raw)
		}
		return &CommentConfig{Enabled: enabled}, nil
	case yaml.MappingNode:
		var cfg CommentConfig
		dec := yaml.NewDecoder(bytes.NewReader([]byte(raw)))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid comment input: %w", err)
		}
		return &cfg, nil
	default:
		return nil, fmt.Errorf("invalid comment input: expected a boolean or a mapping")
	}
}

// ResolveString returns the effective value for a string configuration field.
// Precedence: cliValue > inputValue > defaultValue.
// Returns the effective value and its source ("cli", "input", or "default").
func ResolveString(cliValue, inputValue, defaultValue string) (string, string) {
	if cliValue != "" {
		return cliValue, "cli"
	}
	if inputValue != "" {
		return inputValue, "input"
	}
	return defaultValue, "default"
}

// ResolveMessage picks the comment body: the inline message when configured,
// otherwise the template file, otherwise fallback. The inline message is only
// used when both Body and Message are set. A missing, unreadable, or
// zero-length template falls through to fallback; file errors are not returned.
func ResolveMessage(cfg *CommentConfig, filename, fallback string) (string, MessageSource) {
	if cfg != nil && cfg.Body && cfg.Message != "" {
		return cfg.Message, SourceInline
	}

	if filename == "" {
		filename = DefaultTemplatePath
	}
	data, err := os.ReadFile(filename)
	if err != nil || len(data) == 0 {
		return fallback, SourceFallback
	}
	return string(data), SourceTemplate
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment. Variables that are already set keep their value.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}
