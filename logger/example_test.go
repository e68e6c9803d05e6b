package logger_test

import (
	"os"

	"github.com/mordilloSan/mojo-log/logger"
)

// This example shows the tag, file/line and message layout with plain output.
func ExampleLogger_Emit() {
	style := logger.DefaultStyle()
	style.Layout = logger.Layout{logger.Tag, logger.FileLine, logger.Message}
	l, err := logger.New(logger.Config{Style: &style, Output: os.Stdout})
	if err != nil {
		panic(err)
	}

	_ = l.Emit(logger.Record{Level: logger.InfoLevel, File: "a.c", Line: 10, Format: "value=%d", Args: []any{123}})
	// Output:
	// [INFO] [a.c:10] value=123
}

// This example shows a custom tag on the package-level logger.
func ExampleCustomf() {
	style := logger.DefaultStyle()
	style.Layout = logger.Layout{logger.Tag, logger.Message}
	if err := logger.Init(logger.Config{Style: &style, Output: os.Stdout}); err != nil {
		panic(err)
	}

	_ = logger.Customf("AUDIT", "user %s logged in", "alice")
	// Output:
	// [AUDIT] user alice logged in
}

// This example shows level gating: only ERROR and custom tags pass.
func ExampleInit_minLevel() {
	style := logger.DefaultStyle()
	style.Layout = logger.Layout{logger.Tag, logger.Message}
	style.Brackets = logger.BracketAngle
	if err := logger.Init(logger.Config{MinLevel: logger.ErrorLevel, Style: &style, Output: os.Stdout}); err != nil {
		panic(err)
	}

	_ = logger.Infof("hidden")
	_ = logger.Warnf("hidden")
	_ = logger.Errorf("fail")
	// Output:
	// <ERROR> fail
}

// This example wraps long messages at word boundaries.
func ExampleStyle_Format() {
	style := logger.DefaultStyle()
	style.Layout = logger.Layout{logger.Message}
	style.LineStyle = logger.MultiLine
	style.MaxLineLength = 20

	line := style.Format(logger.Record{Level: logger.InfoLevel, Format: "the quick brown fox jumps over the lazy dog"})
	os.Stdout.WriteString(line)
	// Output:
	// the quick brown fox
	// jumps over the lazy
	// dog
}
