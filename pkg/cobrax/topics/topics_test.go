package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopics() fstest.MapFS {
	return fstest.MapFS{
		"patterns.md":         {Data: []byte("# Patterns\n\nUse `{:03d}`.")},
		"option-execute.txt":  {Data: []byte("Applies the renames.")},
		"nested/ordering.md":  {Data: []byte("# Ordering")},
		"notes.json":          {Data: []byte("{}")},
		"config.txxt":         {Data: []byte("Configuration Guide")},
		"nested/deeper/x.txt": {Data: []byte("deep")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testTopics())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"patterns", true, "# Patterns\n\nUse `{:03d}`."},
			{"option-execute", true, "Applies the renames."},
			{"ordering", true, "# Ordering"},
			{"x", true, "deep"},
			{"config", false, ""},
			{"notes", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testTopics(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(testTopics())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"execute", "--execute", "-execute", "option-execute"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-execute", topic.Name)
	}
}

func TestWriteTopicList(t *testing.T) {
	tm := New(testTopics())
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteTopicList(&buf, "renumber")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  ordering\n  patterns\n  x\n")
	assert.Contains(t, out, "Option topics:\n  --execute\n")
	assert.Contains(t, out, "Use 'renumber help <topic>'")

	buf.Reset()
	New(nil).WriteTopicList(&buf, "renumber")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInitialize(t *testing.T) {
	root := &cobra.Command{Use: "renumber", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})

	tm, err := Initialize(root, testTopics())
	require.NoError(t, err)
	require.NotNil(t, tm)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Contains(t, run("help", "topics"), "Available help topics:")
	assert.Contains(t, run("help", "execute"), "Applies the renames.")
	assert.True(t, strings.HasPrefix(run("help", "patterns"), "# Patterns"))
	assert.Contains(t, run("help", "sub"), "A subcommand")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 60}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nSome *body* text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}
