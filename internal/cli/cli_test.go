package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arcroute/graphio"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func generateGrid(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "city.yaml")
	_, _, err := run(t, "generate", "grid", "--rows", "2", "--cols", "2", "-o", path)
	require.NoError(t, err)

	return path
}

func TestGenerateGrid(t *testing.T) {
	path := generateGrid(t)

	g, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.InDelta(t, 800, g.TotalWeight(), 1e-9)
}

func TestGenerateRandomToStdout(t *testing.T) {
	stdout, _, err := run(t, "generate", "random", "-n", "8", "--p", "0.5", "--seed", "4")
	require.NoError(t, err)

	var doc graphio.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Len(t, doc.Nodes, 8)
	assert.NotEmpty(t, doc.Edges)
}

func TestDrone(t *testing.T) {
	stdout, stderr, err := run(t, "drone", generateGrid(t))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Planned drone flight")

	var doc graphio.FlightDocument
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	// The 2×2 grid is a 400 m square: already Eulerian.
	assert.InDelta(t, 400, doc.Distance, 1e-9)
	assert.InDelta(t, 0, doc.Deadhead, 1e-9)
	assert.Len(t, doc.Steps, 4)
}

func TestFleet(t *testing.T) {
	stdout, _, err := run(t, "fleet", generateGrid(t), "-n", "2", "-f", "yaml")
	require.NoError(t, err)

	var doc graphio.PlanDocument
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, 2, doc.Vehicles)
	assert.Len(t, doc.Routes, 2-len(doc.Failures))
	assert.InDelta(t, 400, doc.NetworkLength, 1e-9)
	assert.Positive(t, doc.TotalDistance)
}

func TestFleetWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plan.json")
	_, _, err := run(t, "fleet", generateGrid(t), "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc graphio.PlanDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Routes, 1)
	assert.InDelta(t, 400, doc.Routes[0].Distance, 1e-9)
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "arcroute.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	_, stderr, err := run(t, "-c", cfgPath, "drone", generateGrid(t))
	require.NoError(t, err)
	assert.Contains(t, stderr, "network loaded")

	require.NoError(t, os.WriteFile(cfgPath, []byte("[fleet]\nvehicles = 0\n"), 0o644))
	_, _, err = run(t, "-c", cfgPath, "drone", generateGrid(t))
	require.Error(t, err)
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "drone", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, _, err = run(t, "fleet", generateGrid(t), "-n", "0")
	require.Error(t, err)

	_, _, err = run(t, "generate", "grid", "--rows", "0")
	require.Error(t, err)

	_, _, err = run(t, "generate", "random", "--min-length", "10", "--max-length", "5")
	require.Error(t, err)

	_, _, err = run(t, "drone")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	defer SetVersion("", "", "")

	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "arcroute v1.2.3")
	assert.Contains(t, stdout, "commit: abc123")
}
