package cmd

import (
	"testing"

	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	assert.Equal(t, "fsdb", rootCmd.Use)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{
		"create", "migrate", "fndds", "fped", "versions", "stats",
	} {
		assert.True(t, names[name], name)
	}
}

func TestParseVersionArg(t *testing.T) {
	tests := []struct {
		msg     string
		arg     string
		res     int
		wantErr bool
	}{
		{"valid code", "8", 8, false},
		{"catalog does not gate parsing", "12", 12, false},
		{"not a number", "fndds", 0, true},
		{"float", "1.5", 0, true},
		{"empty", "", 0, true},
	}

	for _, v := range tests {
		res, err := parseVersionArg(v.arg)
		if v.wantErr {
			require.Error(t, err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestResolveSourceArg(t *testing.T) {
	// An explicit path wins without consulting the registry.
	path, err := resolveSourceArg(
		[]string{"8", "/data/fndds0708.sqlite"}, datasets.FNDDS, 8,
	)
	require.NoError(t, err)
	assert.Equal(t, "/data/fndds0708.sqlite", path)
}

func TestImportCmdArgs(t *testing.T) {
	for _, getCmd := range []func() *cobra.Command{
		getFnddsCmd, getFpedCmd,
	} {
		cmd := getCmd()

		assert.Error(t, cmd.Args(cmd, []string{}), cmd.Name())
		assert.NoError(t, cmd.Args(cmd, []string{"8"}), cmd.Name())
		assert.NoError(t,
			cmd.Args(cmd, []string{"8", "/data/src.sqlite"}),
			cmd.Name())
		assert.Error(t,
			cmd.Args(cmd, []string{"8", "a", "b"}), cmd.Name())
	}
}

func TestCreateCmdFlags(t *testing.T) {
	cmd := getCreateCmd()
	assert.Equal(t, "create", cmd.Use)

	flag := cmd.Flags().Lookup("force")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestStatsCmdArgs(t *testing.T) {
	cmd := getStatsCmd()

	assert.NoError(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"8"}))
	assert.Error(t, cmd.Args(cmd, []string{"8", "16"}))
}
