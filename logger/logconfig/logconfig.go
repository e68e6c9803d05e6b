// Package logconfig loads a logger.Config from a configuration file and
// LOGGER_* environment variables.
//
// Recognized keys (file keys / environment variables):
//
//	min_level        LOGGER_MIN_LEVEL        info|warn|error|custom
//	color            LOGGER_COLOR            auto|always|never
//	color_message    LOGGER_COLOR_MESSAGE    bool
//	bracket_colored  LOGGER_BRACKET_COLORED  bool
//	brackets         LOGGER_BRACKETS         none|square|curly|parenthesis|angle
//	line_style       LOGGER_LINE_STYLE       single|multi
//	max_line_length  LOGGER_MAX_LINE_LENGTH  int
//	layout           LOGGER_LAYOUT           e.g. "timestamp,tag,fileline,message"
//	time_format      LOGGER_TIME_FORMAT      Go time layout
//	palette.info     LOGGER_PALETTE_INFO     color spec, e.g. "bold+green"
//	custom_colors    (file only)             list of up to 10 color specs
//	journal          LOGGER_JOURNAL          auto|on|off
package logconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/mordilloSan/mojo-log/logger"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LOGGER"

// ErrInvalidConfig is returned for values that cannot be mapped onto a logger.Config.
var ErrInvalidConfig = errors.New("logconfig: invalid configuration")

type paletteConfig struct {
	Info      logger.Color `mapstructure:"info"`
	Warn      logger.Color `mapstructure:"warn"`
	Error     logger.Color `mapstructure:"error"`
	Custom    logger.Color `mapstructure:"custom"`
	Timestamp logger.Color `mapstructure:"timestamp"`
}

type fileConfig struct {
	MinLevel       logger.Level        `mapstructure:"min_level"`
	Color          string              `mapstructure:"color"`
	ColorMessage   bool                `mapstructure:"color_message"`
	BracketColored bool                `mapstructure:"bracket_colored"`
	Brackets       logger.BracketStyle `mapstructure:"brackets"`
	LineStyle      logger.LineStyle    `mapstructure:"line_style"`
	MaxLineLength  int                 `mapstructure:"max_line_length"`
	Layout         logger.Layout       `mapstructure:"layout"`
	TimeFormat     string              `mapstructure:"time_format"`
	Palette        paletteConfig       `mapstructure:"palette"`
	CustomColors   []logger.Color      `mapstructure:"custom_colors"`
	Journal        string              `mapstructure:"journal"`
}

// Load reads path (any format viper understands; empty means no file) and
// the LOGGER_* environment, and returns a validated logger.Config.
func Load(path string) (logger.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return logger.Config{}, fmt.Errorf("logconfig: read %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// SetDefaults registers the defaults of logger.DefaultStyle on v. Keys
// must be known to viper for environment variables to be picked up.
func SetDefaults(v *viper.Viper) {
	def := logger.DefaultStyle()
	v.SetDefault("min_level", "info")
	v.SetDefault("color", "never")
	v.SetDefault("color_message", def.ColorMessage)
	v.SetDefault("bracket_colored", def.BracketColored)
	v.SetDefault("brackets", def.Brackets.String())
	v.SetDefault("line_style", def.LineStyle.String())
	v.SetDefault("max_line_length", def.MaxLineLength)
	v.SetDefault("layout", layoutString(def.Layout))
	v.SetDefault("time_format", def.TimeFormat)
	v.SetDefault("palette.info", def.Palette.Info.String())
	v.SetDefault("palette.warn", def.Palette.Warn.String())
	v.SetDefault("palette.error", def.Palette.Error.String())
	v.SetDefault("palette.custom", def.Palette.Custom.String())
	v.SetDefault("palette.timestamp", def.Palette.Timestamp.String())
	customs := make([]string, 0, len(def.CustomColors))
	for _, c := range def.CustomColors {
		customs = append(customs, c.String())
	}
	v.SetDefault("custom_colors", customs)
	v.SetDefault("journal", "off")
}

// FromViper decodes the settings held by v into a validated logger.Config.
func FromViper(v *viper.Viper) (logger.Config, error) {
	SetDefaults(v)

	var fc fileConfig
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&fc, hook); err != nil {
		return logger.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return fc.build()
}

func (fc fileConfig) build() (logger.Config, error) {
	colorEnabled, err := resolveColor(fc.Color)
	if err != nil {
		return logger.Config{}, err
	}
	journal, err := resolveJournal(fc.Journal)
	if err != nil {
		return logger.Config{}, err
	}
	if len(fc.CustomColors) > logger.NumCustomColors {
		return logger.Config{}, fmt.Errorf("%w: %d custom colors, at most %d slots",
			ErrInvalidConfig, len(fc.CustomColors), logger.NumCustomColors)
	}

	style := logger.DefaultStyle()
	style.ColorEnabled = colorEnabled
	style.ColorMessage = fc.ColorMessage
	style.BracketColored = fc.BracketColored
	style.Brackets = fc.Brackets
	style.LineStyle = fc.LineStyle
	style.MaxLineLength = fc.MaxLineLength
	style.Layout = fc.Layout
	style.TimeFormat = fc.TimeFormat
	style.Palette = logger.Palette(fc.Palette)
	for i, c := range fc.CustomColors {
		style.CustomColors[i] = c
	}
	if err := style.Validate(); err != nil {
		return logger.Config{}, err
	}

	return logger.Config{
		MinLevel:      fc.MinLevel,
		Style:         &style,
		JournalPrefix: journal,
	}, nil
}

// resolveColor maps auto|always|never to a ColorEnabled value. auto turns
// colors on only for a terminal stdout and when NO_COLOR is unset.
func resolveColor(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always", "true", "on":
		return true, nil
	case "never", "false", "off", "":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	}
	return false, fmt.Errorf("%w: color %q", ErrInvalidConfig, mode)
}

// resolveJournal maps auto|on|off; auto follows JOURNAL_STREAM like systemd does.
func resolveJournal(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on", "true":
		return true, nil
	case "off", "false", "":
		return false, nil
	case "auto":
		return os.Getenv("JOURNAL_STREAM") != "", nil
	}
	return false, fmt.Errorf("%w: journal %q", ErrInvalidConfig, mode)
}

func layoutString(layout logger.Layout) string {
	parts := make([]string, 0, len(layout))
	for _, c := range layout {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ",")
}
