package logger

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// ObjectEncoder serializes Object arguments as indented text ending in a newline.
type ObjectEncoder interface {
	Encode(v any) (string, error)
}

// JSONEncoder renders objects as JSON indented by two spaces.
type JSONEncoder struct{}

// Encode implements ObjectEncoder.
func (JSONEncoder) Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// YAMLEncoder renders objects as YAML indented by two spaces.
type YAMLEncoder struct{}

// Encode implements ObjectEncoder.
func (YAMLEncoder) Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncoderByName returns the encoder registered under name ("json" or "yaml").
func EncoderByName(name string) (ObjectEncoder, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONEncoder{}, true
	case "yaml", "yml":
		return YAMLEncoder{}, true
	default:
		return nil, false
	}
}
