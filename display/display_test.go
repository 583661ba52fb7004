package display

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommands() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "condax"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "generate", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON(t *testing.T) {
	t.Setenv(JSONEnvVar, "")

	root, child := newCommands()
	assert.False(t, ShouldOutputJSON(child))

	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_LocalFlagWins(t *testing.T) {
	t.Setenv(JSONEnvVar, "1")

	_, child := newCommands()
	child.Flags().Bool("json", false, "")
	require.NoError(t, child.Flags().Set("json", "false"))
	assert.False(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_Env(t *testing.T) {
	t.Setenv(JSONEnvVar, "true")
	_, child := newCommands()
	assert.True(t, ShouldOutputJSON(child))
	assert.True(t, ShouldOutputJSON(nil))
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, map[string]int{"seed": 42}))
	assert.Equal(t, "{\n  \"seed\": 42\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []string{"seed", "prompt"}, [][]string{
		{"1", "wiry, poor"},
		{"2", "stocky, modest"},
	}))

	out := buf.String()
	assert.Contains(t, out, "seed")
	assert.Contains(t, out, "wiry, poor")
	assert.Contains(t, out, "stocky, modest")
}

func TestKeyValuesAndStatus(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	require.NoError(t, KeyValues(&buf, [][2]string{{"domain", "character"}}))
	Success(&buf, "saved %d entities", 3)
	Info(&buf, "run %s", "abc")

	out := buf.String()
	assert.Contains(t, out, "domain")
	assert.Contains(t, out, "character")
	assert.Contains(t, out, "saved 3 entities")
	assert.Contains(t, out, "run abc")
}
