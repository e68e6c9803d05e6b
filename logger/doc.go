// Package logger provides a small leveled console logger whose line layout
// is assembled from independently toggleable components.
//
// # Line Layout
//
// A line is made of the components listed in Style.Layout, in that order,
// separated by single spaces:
//
//   - Timestamp: HH:MM:SS by default (Style.TimeFormat)
//   - Tag: INFO, WARN, ERROR or a custom tag inside the configured brackets
//   - FileLine: [file.go:42] of the call site
//   - Message: the fmt.Sprintf rendering of the format and arguments
//
// The layout must contain Message exactly once. Brackets may be square,
// curly, parenthesis, angle or none.
//
// # Console Output
//
// Plain output is used by default. Set Style.ColorEnabled to enable ANSI
// colors; each level has a palette color and custom tags may pick one of
// ten color slots with CustomSlotf. With MultiLine, messages longer than
// Style.MaxLineLength are wrapped at word boundaries.
//
// # Usage
//
// Initialize once at startup:
//
//	style := logger.DefaultStyle()
//	style.ColorEnabled = true
//	if err := logger.Init(logger.Config{MinLevel: logger.WarnLevel, Style: &style}); err != nil {
//	    return err
//	}
//
// Then log:
//
//	logger.Infof("server started on port %d", 8080)
//	logger.Errorf("failed to connect: %v", err)
//	logger.Customf("AUDIT", "user %s logged in", name)
//	logger.CustomSlotf("DB", 3, "query took %s", d)
//
// Independent loggers are created with New and carry their own style.
//
// # Level Gating
//
// Records below Config.MinLevel return before the call site, clock or
// message are touched. Levels are ordered INFO < WARN < ERROR < CUSTOM.
//
// Configuration can also be loaded from a file and LOGGER_* environment
// variables with package logconfig.
package logger
