package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/graphfile"
	"github.com/katalvlaran/spantree/prim"
)

// demoDoc is the canonical 5-vertex graph in document form.
const demoDoc = `
A: {B: 2, C: 3}
B: {A: 2, C: 1, D: 4, E: 5}
C: {A: 3, B: 1, D: 3}
D: {B: 4, C: 3, E: 1}
E: {B: 5, D: 1}
`

// TestParse_Demo verifies decoding, symmetry and the canonical sorted order.
func TestParse_Demo(t *testing.T) {
	g, err := graphfile.Parse([]byte(demoDoc))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices(), "insertion order is sorted")

	w, err := g.Weight("D", "E")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)

	// The loaded graph is ready for the MST builder and yields the known tree.
	res, err := prim.Build(g, "A")
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, int64(7), res.TotalCost)
}

// TestParse_IsolatedVertex verifies that empty mappings survive as
// isolated vertices.
func TestParse_IsolatedVertex(t *testing.T) {
	g, err := graphfile.Parse([]byte("A: {B: 1}\nB: {A: 1}\nC: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasVertex("C"))
}

// TestParse_AsymmetricRejected covers the three asymmetry shapes: missing
// top-level entry, missing mirrored edge, mismatched mirrored weight.
func TestParse_AsymmetricRejected(t *testing.T) {
	for name, doc := range map[string]string{
		"missing vertex":    "A: {B: 1}\n",
		"missing back edge": "A: {B: 1}\nB: {}\n",
		"weight mismatch":   "A: {B: 1}\nB: {A: 2}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := graphfile.Parse([]byte(doc))
			assert.ErrorIs(t, err, graphfile.ErrAsymmetric)
		})
	}
}

// TestParse_NegativeWeightRejected verifies the non-negativity check.
func TestParse_NegativeWeightRejected(t *testing.T) {
	_, err := graphfile.Parse([]byte("A: {B: -3}\nB: {A: -3}\n"))
	assert.ErrorIs(t, err, graphfile.ErrNegativeWeight)
}

// TestParse_SelfLoopRejected verifies self-loops fail with the core sentinel.
func TestParse_SelfLoopRejected(t *testing.T) {
	_, err := graphfile.Parse([]byte("A: {A: 1}\n"))
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

// TestParse_BadYAML verifies decode failures are surfaced, not swallowed.
func TestParse_BadYAML(t *testing.T) {
	_, err := graphfile.Parse([]byte("A: [not, a, mapping]"))
	assert.Error(t, err)
}

// TestLoad roundtrips a document through a temp file.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoDoc), 0o644))

	g, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
