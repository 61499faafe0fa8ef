package graphfile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML graph definition. Unknown keys are an error.
func ParseYAML(src []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var d Definition
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("graphfile: decode yaml: %w", err)
	}

	return &d, nil
}
