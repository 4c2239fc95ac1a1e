package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/renumber/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range styles.Names {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestEmbeddedStyleProperties(t *testing.T) {
	assert.True(t, styles.GetStyle("Target").GetBold())
	assert.True(t, styles.GetStyle("Unchanged").GetItalic())
	assert.Equal(t, 1, styles.GetStyle("Arrow").GetPaddingLeft())

	fg := styles.GetStyle("Error").GetForeground()
	color, ok := fg.(lipgloss.AdaptiveColor)
	require.True(t, ok, "Error should use an adaptive color")
	assert.Equal(t, "#B91C1C", color.Light)
	assert.Equal(t, "#F87171", color.Dark)
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.False(t, style.GetBold())
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestMergeStyles(t *testing.T) {
	merged := styles.MergeStyles("Bold", "Unchanged")
	assert.True(t, merged.GetBold())
	assert.True(t, merged.GetItalic())
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(styles.Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Target:
    underline: true
    foreground: accent
`), 0644))

	require.NoError(t, styles.LoadStyles(path))
	assert.True(t, styles.GetStyle("Target").GetUnderline())
	assert.False(t, styles.GetStyle("Target").GetBold())

	assert.Error(t, styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [not, a, map")))
}
