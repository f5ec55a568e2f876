package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats the status as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the status as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, status Status) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(status)
}
