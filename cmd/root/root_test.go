package root

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "orcamento", Cmd.Use)
	assert.Contains(t, Cmd.Short, "budget transactions")
	assert.NotNil(t, Cmd.RunE)
	assert.NotNil(t, Cmd.PersistentPreRunE)
	assert.NotNil(t, Cmd.PersistentPostRunE)
}

func TestInit_RegistersFlagsOnce(t *testing.T) {
	Init()
	Init()

	for _, name := range []string{"config", "settings-backend", "settings-path"} {
		assert.NotNil(t, Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestGetContainer_NotInitialized(t *testing.T) {
	AppContainer = nil
	_, err := GetContainer()
	assert.Error(t, err)
}

func TestSetupAndTeardown(t *testing.T) {
	Init()
	t.Setenv("HOME", t.TempDir())

	var seen bool
	noop := &cobra.Command{
		Use: "noop",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := GetContainer()
			require.NoError(t, err)
			assert.Equal(t, "memory", c.GetConfig().Settings.Backend)
			seen = true
			return nil
		},
	}
	Cmd.AddCommand(noop)
	defer Cmd.RemoveCommand(noop)

	Cmd.SetOut(new(bytes.Buffer))
	Cmd.SetArgs([]string{"noop", "--settings-backend", "memory"})
	require.NoError(t, Cmd.Execute())

	assert.True(t, seen)
	assert.Nil(t, AppContainer, "teardown closes the container")
}

func TestSetup_MissingConfigFile(t *testing.T) {
	Init()
	t.Setenv("HOME", t.TempDir())

	noop := &cobra.Command{Use: "noop", RunE: func(*cobra.Command, []string) error { return nil }}
	Cmd.AddCommand(noop)
	defer Cmd.RemoveCommand(noop)

	Cmd.SetOut(new(bytes.Buffer))
	Cmd.SetErr(new(bytes.Buffer))
	Cmd.SetArgs([]string{"noop", "--config", "/nonexistent/orcamento.yaml"})
	assert.Error(t, Cmd.Execute())
	ConfigFile = ""
}
