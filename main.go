package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/mojo-log/logger"
	"github.com/mordilloSan/mojo-log/logger/logconfig"
)

// Example demonstrating the mojo-log layout and level gating.
func main() {
	configFile := ""

	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	// Usage: ./mojo-log [config.yaml]
	// LOGGER_* environment variables override the file, e.g.
	// LOGGER_COLOR=always LOGGER_LAYOUT=tag,message ./mojo-log
	cfg, err := logconfig.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logger configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Basic log messages
	_ = logger.Infof("This is an info message: %d", 123)
	_ = logger.Warnf("This is a warning message: %s", "be careful!")
	_ = logger.Errorf("This is an error message: %f", 3.14)
	_ = logger.Customf("CUSTOM", "This is a custom log message with tag: %s", "TAG")

	// Custom tags may pick one of ten color slots
	for slot := range logger.NumCustomColors {
		_ = logger.CustomSlotf(fmt.Sprintf("SLOT%d", slot), slot, "custom color slot %d", slot)
	}

	// Long messages wrap at word boundaries with the multi line style
	style := logger.GetStyle()
	style.LineStyle = logger.MultiLine
	style.MaxLineLength = 40
	if err := logger.Configure(style); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure style: %v\n", err)
		os.Exit(1)
	}
	_ = logger.Infof("This message is long enough that it will be wrapped across several lines at word boundaries")
}
