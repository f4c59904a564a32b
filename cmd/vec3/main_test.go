package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vec3"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VEC3_LOG_LEVEL", "")

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHello(t *testing.T) {
	out, _, err := runCLI(t, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Vector3d::cross({{{1, 0, 0}}}, {{{0, 1, 0}}}) = {0 0 1}\n", out)
}

func TestHelloHandles(t *testing.T) {
	out, _, err := runCLI(t, "hello", "--handles")
	require.NoError(t, err)
	assert.Equal(t, "Vector3d::dot({{{1, 0, 0}}}, {{{1, 1, 0}}}) = 1.000000\n", out)
}

func TestHelloHandlesReleasesEverything(t *testing.T) {
	reg := vec3.NewRegistry()

	d, err := helloHandles(reg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	assert.Equal(t, 0, reg.Len())
}

func TestHelloHandlesFullRegistry(t *testing.T) {
	reg := vec3.NewRegistry(vec3.WithMaxHandles(1))

	_, err := helloHandles(reg)
	assert.ErrorIs(t, err, vec3.ErrRegistryFull)
	assert.Equal(t, 0, reg.Len())
}

func TestDot(t *testing.T) {
	out, _, err := runCLI(t, "dot", "{0 0 1}", "{0 0 -1}")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestCross(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, _, err := runCLI(t, "cross", "{1 0 0}", "{0 1 0}")
		require.NoError(t, err)
		assert.Equal(t, "{0 0 1}\n", out)
	})

	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := runCLI(t, "cross", "{1 0 0}", "{0 1 0}", "--output", name)
			require.NoError(t, err)
			assert.JSONEq(t, `{"op":"cross","args":["{1 0 0}","{0 1 0}"],"result":"{0 0 1}"}`, out)
		})
	}
}

func TestMathCommandErrors(t *testing.T) {
	_, _, err := runCLI(t, "dot", "{1 0}", "{1 0 0}")
	assert.ErrorContains(t, err, "argument 1")

	_, _, err = runCLI(t, "cross", "{1 0 0}")
	assert.Error(t, err)

	_, _, err = runCLI(t, "dot", "{1 0 0}", "{1 0 0}", "--output", "xml")
	assert.ErrorContains(t, err, "unknown output codec")
}

func TestEqual(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"equal", "ABC", "abc"}, "true\n"},
		{[]string{"equal", "abc", "abcd"}, "false\n"},
		{[]string{"equal", "Straße", "STRASSE"}, "false\n"},
		{[]string{"equal", "--unicode", "Straße", "STRASSE"}, "true\n"},
	}

	for _, tt := range tests {
		out, _, err := runCLI(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.expected, out, tt.args)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample configuration")

	_, err = os.Stat(target)
	require.NoError(t, err)

	_, _, err = runCLI(t, "config", "init", "--path", target)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(target, []byte("[output]\ncodec = \"json\"\n"), 0o600))
	out, _, err = runCLI(t, "--config", target, "config", "show")
	require.NoError(t, err)
	assert.Regexp(t, `codec = ["']json["']`, out)

	out, _, err = runCLI(t, "--config", target, "dot", "{1 0 0}", "{1 0 0}")
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"dot","args":["{1 0 0}","{1 0 0}"],"result":1}`, out)
}

func TestInvalidConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(target, []byte("[logging]\nlevel = \"loud\"\n"), 0o600))

	_, _, err := runCLI(t, "--config", target, "hello")
	assert.ErrorContains(t, err, "logging.level")
}

func TestHandleLogging(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(target, []byte("[logging]\nlevel = \"debug\"\nformat = \"json\"\n"), 0o600))

	_, stderr, err := runCLI(t, "--config", target, "hello", "--handles")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"create completed"`)
	assert.Contains(t, stderr, `"msg":"destroy completed"`)
}
