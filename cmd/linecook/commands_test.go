package linecook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/paths"
	"github.com/arthur-debert/linecook/pkg/testutil"
)

// setupEnv isolates config, state and env lookups and returns a template
// directory holding a greet template
func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".state"))
	for _, name := range []string{paths.EnvPath, paths.EnvFieldSep, paths.EnvHeaders, paths.EnvHeaderRow} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	dir := filepath.Join(home, "templates")
	testutil.CreateFile(t, dir, "greet.tmpl", "Hello, {{ .name }}!")
	testutil.CreateFile(t, dir, "greet.yml", "description: Says **hello**.\nargs:\n  name: world\n")
	testutil.CreateFile(t, dir, "mail/sig.tpl", "{{ who }} @ {{ site }}")
	testutil.CreateFile(t, dir, "mail/sig.yml", "args: [who]\n")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCmd(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "", "--path", dir, "render", "greet")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!\n", out)

	out, err = run(t, "", "--path", dir, "render", "greet", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!\n", out)
}

func TestRenderCmdAttributes(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "", "--path", dir, "--attr", "site=example.org", "render", "mail/sig", "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada @ example.org\n", out)

	_, err = run(t, "", "--path", dir, "--attr", "novalue", "render", "mail/sig", "ada")
	assert.Error(t, err)
}

func TestRenderCmdNotFound(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, "", "--path", dir, "render", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestEachCmd(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "Ada\nGrace\n", "--path", dir, "each", "greet")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!\nHello, Grace!\n", out)
}

func TestEachCmdFileAndFlags(t *testing.T) {
	dir := setupEnv(t)
	input := testutil.CreateFile(t, t.TempDir(), "in.txt", "x;who\n1;Ada\n")

	out, err := run(t, "", "--path", dir, "--attr", "site=s", "each", "-F", ";", "--header-row", "mail/sig", input)
	require.NoError(t, err)
	assert.Equal(t, "Ada @ s\n", out)

	_, err = run(t, "", "--path", dir, "each", "greet", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "", "--path", dir, "each", "-F", "ab", "greet")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestListCmd(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "", "--path", dir, "list")
	require.NoError(t, err)
	assert.Equal(t,
		"greet     "+filepath.Join(dir, "greet.tmpl")+"\n"+
			"mail/sig  "+filepath.Join(dir, "mail", "sig.tpl")+"\n",
		out)

	empty := t.TempDir()
	out, err = run(t, "", "--path", empty, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No templates found")
}

func TestShowCmd(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "", "--path", dir, "--format", "text", "show", "greet")
	require.NoError(t, err)
	assert.Contains(t, out, "engine: text/template\n")
	assert.Contains(t, out, "  1. name = world\n")
	assert.Contains(t, out, "Says **hello**.\n")
}

func TestConfigCmd(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "", "--path", dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, dir)
	assert.Contains(t, out, "field_sep")

	out, err = run(t, "", "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "~/.linecook")
}

func TestVersionCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "linecook version dev")
}

func TestCompletionCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "linecook")
}

func TestNoCommand(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "")
	assert.Error(t, err)
}
