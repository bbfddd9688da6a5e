package cmd

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── version output ─────────────────────────────────────────────────

func TestVersionCommand(t *testing.T) {
	// Set version vars
	Version = "1.2.3"
	CommitSHA = "abc1234"
	BuildDate = "2024-01-01"

	// The version command uses fmt.Printf (stdout), not cmd.OutOrStdout()
	// so we capture via os.Pipe
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs([]string{"version"})
	err := rootCmd.Execute()
	require.NoError(t, err)

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	assert.Contains(t, output, "dockerase")
	assert.Contains(t, output, "1.2.3")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "2024-01-01")
	assert.Contains(t, output, runtime.GOOS)
	assert.Contains(t, output, runtime.GOARCH)
}

// ── GetRootCmd ─────────────────────────────────────────────────────

func TestGetRootCmd(t *testing.T) {
	cmd := GetRootCmd()
	assert.NotNil(t, cmd)
	assert.Equal(t, "dockerase", cmd.Use)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"purge", "select", "system", "version", "completion"} {
		assert.True(t, names[want], "expected subcommand %q", want)
	}
}

func TestSystemSubcommands(t *testing.T) {
	sys, _, err := rootCmd.Find([]string{"system", "purge"})
	require.NoError(t, err)
	assert.Equal(t, "purge", sys.Name())

	sel, _, err := rootCmd.Find([]string{"system", "select"})
	require.NoError(t, err)
	assert.Equal(t, "select", sel.Name())
}

// ── flags ──────────────────────────────────────────────────────────

func TestRootFlagsDeclared(t *testing.T) {
	for _, name := range []string{"nuclear", "force", "dry-run"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "expected flag --%s", name)
	}
	force := rootCmd.PersistentFlags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
}

func TestPurgeLocalFlags(t *testing.T) {
	purge, _, err := rootCmd.Find([]string{"purge"})
	require.NoError(t, err)
	assert.NotNil(t, purge.Flags().Lookup("force"))
	assert.NotNil(t, purge.Flags().Lookup("dry-run"))
}

// ── --nuclear dispatch ─────────────────────────────────────────────

func TestNuclearFlagOverridesSubcommands(t *testing.T) {
	cases := [][]string{
		{"--nuclear", "--dry-run"},
		{"purge", "--nuclear", "--dry-run"},
		{"select", "--nuclear", "--dry-run"},
		{"system", "--nuclear", "--dry-run"},
		{"system", "purge", "--nuclear", "--dry-run"},
		{"system", "select", "--nuclear", "--dry-run"},
	}

	orig := nuclearRunner
	defer func() {
		nuclearRunner = orig
		nuclearFlag, forceFlag, dryRunFlag = false, false, false
		purgeForce, purgeDryRun = false, false
		selectForce, selectDryRun = false, false
		systemForce, systemDryRun = false, false
		rootCmd.SetArgs(nil)
	}()

	for _, args := range cases {
		calls := 0
		gotDryRun := false
		nuclearRunner = func(ctx context.Context, force, dryRun bool) error {
			calls++
			gotDryRun = dryRun
			return nil
		}

		rootCmd.SetArgs(args)
		require.NoError(t, rootCmd.Execute(), "args %v", args)
		assert.Equal(t, 1, calls, "args %v", args)
		assert.True(t, gotDryRun, "args %v", args)
	}
}

// ── argument errors ────────────────────────────────────────────────

func TestUnknownSubcommandFails(t *testing.T) {
	rootCmd.SetArgs([]string{"frobnicate"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
	rootCmd.SetArgs(nil)
}

func TestUnknownFlagFails(t *testing.T) {
	rootCmd.SetArgs([]string{"--no-such-flag"})
	err := rootCmd.Execute()
	require.Error(t, err)
	rootCmd.SetArgs(nil)
}
