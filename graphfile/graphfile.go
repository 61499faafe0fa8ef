// Package graphfile loads graph definitions (edge lists plus an optional
// default query) from YAML or HCL files and builds them into a core.Graph.
//
// YAML:
//
//	name: scotland
//	edges:
//	  - {from: Edinburgh, to: Stirling, weight: 50}
//	query: {from: Edinburgh, to: Dundee}
//
// HCL:
//
//	name = "scotland"
//	edge {
//	  from   = "Edinburgh"
//	  to     = "Stirling"
//	  weight = 50
//	}
//	query {
//	  from = "Edinburgh"
//	  to   = "Dundee"
//	}
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for graph definition loading.
var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .hcl.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported file format")

	// ErrNoEdges indicates a definition without any edge.
	ErrNoEdges = errors.New("graphfile: definition has no edges")
)

// EdgeSpec is one undirected, weighted edge.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// QuerySpec names the default start and end vertices of a definition.
type QuerySpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Definition is a decoded graph file.
type Definition struct {
	Name  string     `yaml:"name"`
	Edges []EdgeSpec `yaml:"edges"`
	Query *QuerySpec `yaml:"query,omitempty"`
}

// Load reads path and decodes it according to its extension.
func Load(path string) (*Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(src)
	case ".hcl":
		return ParseHCL(src, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Build creates a graph holding every edge of d, in file order.
// The first rejected edge aborts the build.
func (d *Definition) Build() (*core.Graph, error) {
	if len(d.Edges) == 0 {
		return nil, ErrNoEdges
	}

	g := core.NewGraph(core.WithCapacity(2 * len(d.Edges)))
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edge %d (%s—%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Reference returns the six-city demonstration network with its default
// query from Edinburgh to Dundee.
func Reference() *Definition {
	return &Definition{
		Name: "scotland",
		Edges: []EdgeSpec{
			{From: "Edinburgh", To: "Stirling", Weight: 50},
			{From: "Edinburgh", To: "Perth", Weight: 100},
			{From: "Stirling", To: "Glasgow", Weight: 50},
			{From: "Stirling", To: "Perth", Weight: 40},
			{From: "Glasgow", To: "Perth", Weight: 70},
			{From: "Perth", To: "Dundee", Weight: 60},
		},
		Query: &QuerySpec{From: "Edinburgh", To: "Dundee"},
	}
}
