package logconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/mojo-log/logger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsMatchDefaultStyle(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, logger.InfoLevel, cfg.MinLevel)
	assert.False(t, cfg.JournalPrefix)
	require.NotNil(t, cfg.Style)
	if diff := cmp.Diff(logger.DefaultStyle(), *cfg.Style); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "logger.yaml", `
min_level: warning
color: always
bracket_colored: false
brackets: curly
line_style: multi
max_line_length: 60
layout: [tag, message]
time_format: "15:04"
palette:
  warn: bold+bright_yellow
custom_colors: [red, none, blue]
journal: "on"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := logger.DefaultStyle()
	want.ColorEnabled = true
	want.BracketColored = false
	want.Brackets = logger.BracketCurly
	want.LineStyle = logger.MultiLine
	want.MaxLineLength = 60
	want.Layout = logger.Layout{logger.Tag, logger.Message}
	want.TimeFormat = "15:04"
	want.Palette.Warn = logger.Color{color.Bold, color.FgHiYellow}
	want.CustomColors[0] = logger.Color{color.FgRed}
	want.CustomColors[1] = logger.Color{}
	want.CustomColors[2] = logger.Color{color.FgBlue}

	assert.Equal(t, logger.WarnLevel, cfg.MinLevel)
	assert.True(t, cfg.JournalPrefix)
	if diff := cmp.Diff(want, *cfg.Style); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "logger.toml", `
min_level = "info"
layout = ["timestamp", "tag", "message"]
`)
	t.Setenv("LOGGER_MIN_LEVEL", "error")
	t.Setenv("LOGGER_LAYOUT", "message,fileline")
	t.Setenv("LOGGER_BRACKETS", "angle")
	t.Setenv("LOGGER_PALETTE_ERROR", "magenta")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, logger.ErrorLevel, cfg.MinLevel)
	assert.Equal(t, logger.Layout{logger.Message, logger.FileLine}, cfg.Style.Layout)
	assert.Equal(t, logger.BracketAngle, cfg.Style.Brackets)
	assert.Equal(t, logger.Color{color.FgMagenta}, cfg.Style.Palette.Error)
}

func TestLoad_InvalidLayoutIsConfigurationError(t *testing.T) {
	t.Setenv("LOGGER_LAYOUT", "timestamp,tag")

	_, err := Load("")
	require.ErrorIs(t, err, logger.ErrInvalidStyle)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"LOGGER_MIN_LEVEL": "verbose",
		"LOGGER_COLOR":     "sometimes",
		"LOGGER_JOURNAL":   "maybe",
		"LOGGER_BRACKETS":  "round",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_TooManyCustomColors(t *testing.T) {
	path := writeFile(t, "logger.yaml", "custom_colors: [red, red, red, red, red, red, red, red, red, red, red]\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestColorAuto_HonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("LOGGER_COLOR", "auto")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Style.ColorEnabled)
}

func TestJournalAuto_FollowsJournalStream(t *testing.T) {
	t.Setenv("LOGGER_JOURNAL", "auto")

	t.Setenv("JOURNAL_STREAM", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.JournalPrefix)

	t.Setenv("JOURNAL_STREAM", "8:12345")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.True(t, cfg.JournalPrefix)
}

func TestFromViper_DrivesLogger(t *testing.T) {
	v := viper.New()
	v.Set("layout", "tag,message")
	v.Set("brackets", "parenthesis")
	v.Set("min_level", "warn")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg.Output = &buf
	l, err := logger.New(cfg)
	require.NoError(t, err)

	require.NoError(t, l.Infof("dropped"))
	require.NoError(t, l.Warnf("disk at %d%%", 91))
	assert.Equal(t, "(WARN) disk at 91%\n", buf.String())
}
