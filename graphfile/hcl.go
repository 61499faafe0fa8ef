package graphfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclFile represents the top-level structure of an HCL graph file for decoding.
type hclFile struct {
	Name  string     `hcl:"name,optional"`
	Edges []*hclEdge `hcl:"edge,block"`
	Query *hclQuery  `hcl:"query,block"`
}

type hclEdge struct {
	From   string `hcl:"from"`
	To     string `hcl:"to"`
	Weight int64  `hcl:"weight"`
}

type hclQuery struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// ParseHCL decodes an HCL graph definition; filename is used in diagnostics.
func ParseHCL(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: parse hcl %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: decode hcl %s: %w", filename, diags)
	}

	d := &Definition{Name: parsed.Name, Edges: make([]EdgeSpec, 0, len(parsed.Edges))}
	for _, e := range parsed.Edges {
		d.Edges = append(d.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}
	if parsed.Query != nil {
		d.Query = &QuerySpec{From: parsed.Query.From, To: parsed.Query.To}
	}

	return d, nil
}
