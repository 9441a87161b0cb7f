package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/paint-tools-mcp/internal/config"
	"github.com/ironsheep/paint-tools-mcp/internal/version"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", stdout)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "paint-mcp version")
}

func TestRootServesRequests(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvMaxRequestBytes, "")

	stdin := `{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"
	stdout, stderr, err := run(t, stdin, "--log-level", "debug")
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stdout)), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.NotContains(t, resp, "error")

	assert.Contains(t, stderr, "paint-mcp")
	assert.Contains(t, stderr, "starting")
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	_, stderr, err := run(t, "", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, stderr, "chatty")
}

func TestRootRejectsBadEnvironment(t *testing.T) {
	t.Setenv(config.EnvMaxRequestBytes, "huge")

	_, _, err := run(t, "")
	assert.ErrorContains(t, err, config.EnvMaxRequestBytes)
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := run(t, "", "extra")
	assert.Error(t, err)
}
