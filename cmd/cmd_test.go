package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_NodeAndRelationship(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	common := []string{"--dbpath", filepath.Join(dir, "graph.db"), "--app-log", filepath.Join(dir, "app.log")}

	out, err := runCLI(t, append(common, "node", "create", "--data", `{"name": "Alice"}`)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Node 1 created: http://localhost:7474/db/data/node/1")
	assert.Contains(t, out, `"Alice"`)

	out, err = runCLI(t, append(common, "node", "create", "--data", "")...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Node 2 created")

	out, err = runCLI(t, append(common, "relationship", "create", "1", "2", "--type", "KNOWS", "--data", `{"since": 2001}`)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Relationship 1 created: http://localhost:7474/db/data/relationship/1")
	assert.Contains(t, out, "(1)-[:KNOWS]->(2)")

	out, err = runCLI(t, append(common, "relationship", "show", "1")...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "since")
	assert.Contains(t, out, "2001")

	_, err = runCLI(t, append(common, "relationship", "create", "1", "99", "--type", "KNOWS", "--data", "")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_node_not_found")

	_, err = runCLI(t, append(common, "node", "show", "42")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node_not_found")
}

func TestParseID(t *testing.T) {
	id, err := parseID("node", "12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = parseID("node", "-1")
	assert.Error(t, err)
	_, err = parseID("node", "x")
	assert.Error(t, err)
}
