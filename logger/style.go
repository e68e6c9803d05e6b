package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
)

// Component is one piece of a rendered log line.
type Component int

const (
	// Timestamp renders the record time using Style.TimeFormat.
	Timestamp Component = iota
	// Tag renders the level tag inside the configured brackets.
	Tag
	// FileLine renders [file:line] of the call site.
	FileLine
	// Message renders the formatted message.
	Message
)

var componentNames = [...]string{"timestamp", "tag", "fileline", "message"}

func (c Component) String() string {
	if c >= 0 && int(c) < len(componentNames) {
		return componentNames[c]
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Component) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range componentNames {
		if n == name {
			*c = Component(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown layout component %q", ErrInvalidStyle, name)
}

// Layout is the emission order of line components.
// It must contain Message exactly once and no duplicates.
type Layout []Component

// Has reports whether the layout contains c.
func (l Layout) Has(c Component) bool {
	for _, x := range l {
		if x == c {
			return true
		}
	}
	return false
}

// UnmarshalText parses a comma-separated list such as "tag,fileline,message".
func (l *Layout) UnmarshalText(text []byte) error {
	var out Layout
	for _, part := range strings.Split(string(text), ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var c Component
		if err := c.UnmarshalText([]byte(part)); err != nil {
			return err
		}
		out = append(out, c)
	}
	*l = out
	return nil
}

// BracketStyle selects the punctuation enclosing the tag.
type BracketStyle int

const (
	// BracketNone prints the bare tag.
	BracketNone BracketStyle = iota
	// BracketSquare prints [TAG].
	BracketSquare
	// BracketCurly prints {TAG}.
	BracketCurly
	// BracketParen prints (TAG).
	BracketParen
	// BracketAngle prints <TAG>.
	BracketAngle
)

var bracketNames = [...]string{"none", "square", "curly", "parenthesis", "angle"}

func (b BracketStyle) String() string {
	if b >= 0 && int(b) < len(bracketNames) {
		return bracketNames[b]
	}
	return fmt.Sprintf("BracketStyle(%d)", int(b))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BracketStyle) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "paren" {
		name = "parenthesis"
	}
	for i, n := range bracketNames {
		if n == name {
			*b = BracketStyle(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown bracket style %q", ErrInvalidStyle, name)
}

func (b BracketStyle) pair() (string, string) {
	switch b {
	case BracketSquare:
		return "[", "]"
	case BracketCurly:
		return "{", "}"
	case BracketParen:
		return "(", ")"
	case BracketAngle:
		return "<", ">"
	default:
		return "", ""
	}
}

// LineStyle selects whether long messages are wrapped.
type LineStyle int

const (
	// SingleLine never wraps.
	SingleLine LineStyle = iota
	// MultiLine wraps the message at word boundaries to MaxLineLength.
	MultiLine
)

func (s LineStyle) String() string {
	switch s {
	case SingleLine:
		return "single"
	case MultiLine:
		return "multi"
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LineStyle) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "single":
		*s = SingleLine
	case "multi":
		*s = MultiLine
	default:
		return fmt.Errorf("%w: unknown line style %q", ErrInvalidStyle, text)
	}
	return nil
}

// DefaultTimeFormat renders timestamps as HH:MM:SS.
const DefaultTimeFormat = "15:04:05"

// Style is the rendering policy of a Logger. It is replaced as a whole
// through Configure and read as a snapshot by every emission.
type Style struct {
	// ColorEnabled turns on ANSI escape sequences. When false the output
	// contains none, whatever the other color fields say.
	ColorEnabled bool
	// ColorMessage paints the message with the level color.
	ColorMessage bool
	// BracketColored paints the brackets together with the tag text.
	BracketColored bool
	Brackets       BracketStyle `validate:"gte=0,lte=4"`
	LineStyle      LineStyle    `validate:"gte=0,lte=1"`
	// MaxLineLength is the wrap width of the message under MultiLine.
	MaxLineLength int    `validate:"gte=0,required_if=LineStyle 1"`
	Layout        Layout `validate:"required,layout"`
	// TimeFormat is a time.Format layout; empty means DefaultTimeFormat.
	TimeFormat   string
	Palette      Palette
	CustomColors [NumCustomColors]Color
}

// DefaultStyle returns timestamp, tag, file/line and message in that order,
// square colored brackets and the classic green/yellow/red/cyan palette.
// Colors are off until ColorEnabled is set.
func DefaultStyle() Style {
	return Style{
		ColorMessage:   true,
		BracketColored: true,
		Brackets:       BracketSquare,
		LineStyle:      SingleLine,
		Layout:         Layout{Timestamp, Tag, FileLine, Message},
		TimeFormat:     DefaultTimeFormat,
		Palette: Palette{
			Info:      Color{color.FgGreen},
			Warn:      Color{color.FgYellow},
			Error:     Color{color.FgRed},
			Custom:    Color{color.FgCyan},
			Timestamp: Color{color.FgHiBlack},
		},
		CustomColors: [NumCustomColors]Color{
			{color.FgCyan},
			{color.FgMagenta},
			{color.FgBlue},
			{color.FgGreen},
			{color.FgYellow},
			{color.FgHiCyan},
			{color.FgHiMagenta},
			{color.FgHiBlue},
			{color.FgHiGreen},
			{color.FgHiYellow},
		},
	}
}

// clone returns a copy that shares no mutable state with s.
func (s Style) clone() Style {
	out := s
	out.Layout = slices.Clone(s.Layout)
	out.Palette = Palette{
		Info:      slices.Clone(s.Palette.Info),
		Warn:      slices.Clone(s.Palette.Warn),
		Error:     slices.Clone(s.Palette.Error),
		Custom:    slices.Clone(s.Palette.Custom),
		Timestamp: slices.Clone(s.Palette.Timestamp),
	}
	for i, c := range s.CustomColors {
		out.CustomColors[i] = slices.Clone(c)
	}
	return out
}

func (s Style) timeFormat() string {
	if s.TimeFormat == "" {
		return DefaultTimeFormat
	}
	return s.TimeFormat
}

// ErrInvalidStyle is matched by every style validation failure.
var ErrInvalidStyle = errors.New("logger: invalid style")

// ValidationError describes one invalid Style field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is a collection of style validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v: %d error(s)", ErrInvalidStyle, len(ve)))
	for _, e := range ve {
		sb.WriteString(fmt.Sprintf("; %s: %s", e.Field, e.Message))
	}
	return sb.String()
}

func (ve ValidationErrors) Unwrap() error {
	return ErrInvalidStyle
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("layout", validateLayout); err != nil {
		panic(err)
	}
	return v
}

// validateLayout requires known components, no duplicates and exactly one Message.
func validateLayout(fl validator.FieldLevel) bool {
	layout, ok := fl.Field().Interface().(Layout)
	if !ok {
		return false
	}
	seen := make(map[Component]bool, len(layout))
	for _, c := range layout {
		if c < Timestamp || c > Message || seen[c] {
			return false
		}
		seen[c] = true
	}
	return seen[Message]
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "required_if":
		return fmt.Sprintf("field is required when %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "layout":
		return "must list known components without duplicates and contain message exactly once"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Validate checks the style. The returned error, if any, is a
// ValidationErrors and matches ErrInvalidStyle.
func (s Style) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return out
}
