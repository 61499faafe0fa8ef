package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/graphfile"
)

func TestLoad_YAML(t *testing.T) {
	def, err := graphfile.Load(filepath.Join("testdata", "scotland.yaml"))
	require.NoError(t, err)

	assert.Equal(t, graphfile.Reference(), def)
}

func TestLoad_HCL(t *testing.T) {
	def, err := graphfile.Load(filepath.Join("testdata", "islands.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "islands", def.Name)
	require.Len(t, def.Edges, 3)
	assert.Equal(t, graphfile.EdgeSpec{From: "Mull", To: "Iona", Weight: 10}, def.Edges[1])
	require.NotNil(t, def.Query)
	assert.Equal(t, graphfile.QuerySpec{From: "Oban", To: "Iona"}, *def.Query)

	g, err := def.Build()
	require.NoError(t, err)
	p, err := dijkstra.ShortestPath(g, def.Query.From, def.Query.To)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oban", "Mull", "Iona"}, p.Vertices)
	assert.Equal(t, int64(55), p.Distance)

	_, err = dijkstra.ShortestPath(g, "Oban", "Stornoway")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestLoad_Errors(t *testing.T) {
	_, err := graphfile.Load(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	txt := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(txt, []byte("A B 1"), 0o600))
	_, err = graphfile.Load(txt)
	require.ErrorIs(t, err, graphfile.ErrUnsupportedFormat)
}

func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	_, err := graphfile.ParseYAML([]byte("edges:\n  - {from: A, to: B, wieght: 3}\n"))
	require.Error(t, err)
}

func TestParseHCL_Diagnostics(t *testing.T) {
	_, err := graphfile.ParseHCL([]byte(`edge { from = "A" `), "broken.hcl")
	require.Error(t, err)

	// weight is a required attribute.
	_, err = graphfile.ParseHCL([]byte("edge {\n  from = \"A\"\n  to = \"B\"\n}\n"), "partial.hcl")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	g, err := graphfile.Reference().Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	_, err = (&graphfile.Definition{}).Build()
	require.ErrorIs(t, err, graphfile.ErrNoEdges)

	def, err := graphfile.Load(filepath.Join("testdata", "negative.yaml"))
	require.NoError(t, err)
	_, err = def.Build()
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "edge 1")
}
