package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/renumber/pkg/core"
	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/ui"
	"github.com/arthur-debert/renumber/pkg/ui/styles"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"json\"\n[filesystem]\ncase = \"sensitive\"\n"), 0644))

	g := &Globals{ConfigPath: path}
	s, err := g.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, ui.FormatJSON, s.Format)
	assert.Equal(t, core.CaseSensitive, s.CaseMode)

	g.Format = "text"
	g.CaseMode = "insensitive"
	s, err = g.Resolve(map[string]interface{}{"interactive.pattern": "trip_{}"})
	require.NoError(t, err)
	assert.Equal(t, ui.FormatText, s.Format)
	assert.Equal(t, core.CaseInsensitive, s.CaseMode)
	assert.Equal(t, "trip_{}", s.Config.Interactive.Pattern)
}

func TestResolve_InvalidFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	g := &Globals{Format: "xml"}
	_, err := g.Resolve(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestResolve_UserStyles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Cleanup(styles.Reset)

	dir := filepath.Join(home, "renumber")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  Target:\n    underline: true\n"), 0644))

	// plain output ignores the styles file
	_, err := (&Globals{Format: "text"}).Resolve(nil)
	require.NoError(t, err)
	assert.False(t, styles.GetStyle("Target").GetUnderline())

	_, err = (&Globals{Format: "term"}).Resolve(nil)
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Target").GetUnderline())

	require.NoError(t, os.WriteFile(path, []byte("styles: [broken"), 0644))
	_, err = (&Globals{Format: "term"}).Resolve(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestRegister(t *testing.T) {
	root := &cobra.Command{Use: "renumber"}
	g := &Globals{}
	g.Register(root)

	require.NoError(t, root.ParseFlags([]string{"-vv", "--format", "json", "--case", "sensitive", "--config", "/tmp/c.toml"}))
	assert.Equal(t, 2, g.Verbosity)
	assert.Equal(t, map[string]interface{}{
		"output.format":   "json",
		"filesystem.case": "sensitive",
	}, g.Overrides())
	assert.Equal(t, "/tmp/c.toml", g.ConfigPath)
}

func TestReport(t *testing.T) {
	cmd := &cobra.Command{}
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	cause := errors.New(errors.ErrCollision, "two files collide")
	err := Report(cmd, ui.FormatText, cause)

	assert.True(t, IsReported(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCollision))
	assert.Equal(t, "Error: two files collide\n", stderr.String())
	assert.False(t, IsReported(cause))
}
