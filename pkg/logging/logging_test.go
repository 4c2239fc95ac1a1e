package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "renumber", "renumber.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		got := filepath.ToSlash(getLogFilePath())
		assert.Equal(t, "/custom/state/renumber/renumber.log", got)
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.True(t, strings.HasSuffix(filepath.ToSlash(got), "renumber/renumber.log"), got)
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	defer func() { log.Logger = orig }()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger(ComponentValidate)
	logger.Info().Msg("test message")

	out := buf.String()
	assert.Contains(t, out, `"component":"planner.validate"`)
	assert.Contains(t, out, "test message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "execute")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"execute"`)
	assert.Contains(t, out, "duration")
}

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelForVerbosity(-1))
	assert.Equal(t, zerolog.WarnLevel, LevelForVerbosity(0))
	assert.Equal(t, zerolog.InfoLevel, LevelForVerbosity(1))
	assert.Equal(t, zerolog.DebugLevel, LevelForVerbosity(2))
	assert.Equal(t, zerolog.TraceLevel, LevelForVerbosity(7))
}

func TestWithPlan(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	plan := &types.Plan{Directory: "/photos", Entries: []types.PlanEntry{
		{Source: types.FileEntry{Name: "1.jpg", Stem: "1", Ext: ".jpg"}, TargetName: "1.jpg"},
		{Source: types.FileEntry{Name: "b.jpg", Stem: "b", Ext: ".jpg"}, TargetName: "2.jpg"},
	}}
	planLogger := WithPlan(logger, plan)
	planLogger.Info().Msg("Executing plan")

	out := buf.String()
	assert.Contains(t, out, `"dir":"/photos"`)
	assert.Contains(t, out, `"entries":2`)
	assert.Contains(t, out, `"changed":1`)

	buf.Reset()
	noPlanLogger := WithPlan(logger, nil)
	noPlanLogger.Info().Msg("no plan")
	assert.NotContains(t, buf.String(), "entries")
}
