package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// NumCustomColors is the number of color slots available to custom tags.
const NumCustomColors = 10

// ansiReset ends any SGR sequence still open on the terminal.
var ansiReset = fmt.Sprintf("\x1b[%dm", color.Reset)

// ErrUnknownColor is returned when a color name cannot be parsed.
var ErrUnknownColor = errors.New("logger: unknown color")

// Color is a set of SGR attributes applied together, e.g.
// Color{color.Bold, color.FgRed}. An empty Color paints nothing.
type Color []color.Attribute

// Palette holds the color of each level class and of the timestamp.
type Palette struct {
	Info      Color
	Warn      Color
	Error     Color
	Custom    Color
	Timestamp Color
}

var colorNames = map[string]color.Attribute{
	"reset":          color.Reset,
	"bold":           color.Bold,
	"dim":            color.Faint,
	"underline":      color.Underline,
	"blink":          color.BlinkSlow,
	"reverse":        color.ReverseVideo,
	"hidden":         color.Concealed,
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// ParseColor parses a color spec made of attribute names joined by "+",
// e.g. "green", "bold+bright_red". "none" and "" yield an empty Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return Color{}, nil
	}
	var c Color
	for _, name := range strings.Split(s, "+") {
		attr, ok := colorNames[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		c = append(c, attr)
	}
	return c, nil
}

// String returns the spec form accepted by ParseColor.
func (c Color) String() string {
	if len(c) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(c))
	for _, attr := range c {
		parts = append(parts, attributeName(attr))
	}
	return strings.Join(parts, "+")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func attributeName(attr color.Attribute) string {
	for name, a := range colorNames {
		if a == attr {
			return name
		}
	}
	return fmt.Sprintf("%d", int(attr))
}

// paint wraps s in the color's escape sequence followed by a reset.
// Output does not depend on whether stdout is a terminal.
func (c Color) paint(s string) string {
	if len(c) == 0 {
		return s
	}
	p := color.New(c...)
	p.EnableColor()
	return p.Sprint(s)
}
