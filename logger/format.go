package logger

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

// NoSlot makes a custom record use Palette.Custom instead of a CustomColors slot.
const NoSlot = -1

// Record is a single log call. It lives for the duration of one Emit.
type Record struct {
	Level Level
	// Tag is the display tag of a CustomLevel record.
	Tag string
	// Slot indexes Style.CustomColors for CustomLevel records; NoSlot uses
	// the palette's custom color. The zero value selects slot 0, so set
	// NoSlot explicitly for a plain custom record. Any other value makes
	// Emit return ErrColorSlot. Other levels ignore Slot.
	Slot   int
	File   string
	Line   int
	Time   time.Time
	Format string
	Args   []any
}

func (r Record) tag() string {
	if r.Level == CustomLevel && r.Tag != "" {
		return r.Tag
	}
	return r.Level.String()
}

// Format renders r under s as one line terminated by "\n" (several lines
// when a MultiLine message is wrapped). It has no side effects.
func (s Style) Format(r Record) string {
	parts := make([]string, 0, len(s.Layout))
	for _, c := range s.Layout {
		switch c {
		case Timestamp:
			parts = append(parts, s.paint(s.Palette.Timestamp, r.Time.Format(s.timeFormat())))
		case Tag:
			parts = append(parts, s.formatTag(r))
		case FileLine:
			parts = append(parts, fmt.Sprintf("[%s:%d]", r.File, r.Line))
		case Message:
			parts = append(parts, s.formatMessage(r))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	if s.ColorEnabled {
		b.WriteString(ansiReset)
	}
	b.WriteByte('\n')
	return b.String()
}

func (s Style) formatTag(r Record) string {
	open, closing := s.Brackets.pair()
	name := r.tag()
	if !s.ColorEnabled {
		return open + name + closing
	}
	c := s.levelColor(r)
	if s.BracketColored {
		return c.paint(open + name + closing)
	}
	return open + c.paint(name) + closing
}

func (s Style) formatMessage(r Record) string {
	msg := fmt.Sprintf(r.Format, r.Args...)
	if s.LineStyle == MultiLine && s.MaxLineLength > 0 && utf8.RuneCountInString(msg) > s.MaxLineLength {
		msg = wordwrap.WrapString(msg, uint(s.MaxLineLength))
	}
	if s.ColorMessage {
		return s.paint(s.levelColor(r), msg)
	}
	return msg
}

func (s Style) levelColor(r Record) Color {
	switch r.Level {
	case InfoLevel:
		return s.Palette.Info
	case WarnLevel:
		return s.Palette.Warn
	case ErrorLevel:
		return s.Palette.Error
	case CustomLevel:
		if r.Slot >= 0 && r.Slot < NumCustomColors {
			return s.CustomColors[r.Slot]
		}
		return s.Palette.Custom
	}
	return nil
}

func (s Style) paint(c Color, text string) string {
	if !s.ColorEnabled {
		return text
	}
	return c.paint(text)
}
