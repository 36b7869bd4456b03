package fmtby

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSON renders data as a JSON document. Without Indent the output is
// compact. HTML characters are not escaped and no trailing newline is
// written.
type JSON[T any] struct {
	Indent string
}

// Render writes data as JSON.
func (j JSON[T]) Render(s Sink, data T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(data); err != nil {
		return err
	}
	_, err := s.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// YAML renders data as a YAML document without the trailing newline.
// Indent of zero keeps the encoder default.
type YAML[T any] struct {
	Indent int
}

// Render writes data as YAML.
func (y YAML[T]) Render(s Sink, data T) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if y.Indent > 0 {
		enc.SetIndent(y.Indent)
	}
	if err := enc.Encode(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := s.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
