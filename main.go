// Package main - timelist
//
// A command-line tool that converts a free-text or numeric time query into
// alternate timestamp representations for a launcher UI.
//
// The tool supports:
// - Natural-language queries ("last night", "next week", "tomorrow 9am")
// - Raw epoch input (all-digit queries above a small threshold)
// - JSON output as a plain array (default) or Alfred script-filter envelope
// - A configurable second display zone (default Europe/London)
// - Plain text output for terminal use (--plain)
//
// Architecture:
// - main.go: Entry point, flag parsing, and flow control
// - normalize.go: Query normalization and resolution strategies
// - format.go: The six fixed timestamp formatters
// - feedback.go: Result list collection and serialization
// - config.go: Optional ~/.timelist.yaml handling
// - display.go: Plain-text rendering and error reporting
//
// Usage examples:
//   timelist                       # six representations of "now"
//   timelist last night            # yesterday 9pm
//   timelist 1700000000            # raw epoch seconds
//   timelist -alfred next week     # Alfred script-filter JSON
//   timelist -plain -zone Asia/Tokyo tomorrow 9am
//   timelist -set-zone America/New_York  # persist a different display zone
//
// A query that cannot be parsed produces no output and exits 0: the
// launcher renders an empty result list, not an error.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	// Version information (set during build)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle version command
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v" || os.Args[1] == "version") {
		fmt.Printf("timelist %s\n", Version)
		fmt.Printf("Build date: %s\n", BuildDate)
		fmt.Printf("Git commit: %s\n", GitCommit)
		return
	}

	var (
		alfred  = flag.Bool("alfred", false, "Wrap output in the Alfred script-filter envelope")
		plain   = flag.Bool("plain", false, "Render results as plain text instead of JSON")
		noColor = flag.Bool("no-color", false, "Disable ANSI color output in plain mode")
		zone    = flag.String("zone", "", "IANA name of the second display zone (overrides config)")
		setZone = flag.String("set-zone", "", "Set the default second display zone and exit")
		nowArg  = flag.String("now", "", "Query to resolve as the reference instant (for scripting)")
	)
	flag.Parse()

	query := strings.Join(flag.Args(), " ")

	// Load config
	config, err := loadConfig()
	if err != nil && !os.IsNotExist(err) {
		fatal(fmt.Errorf("failed to load config: %v", err))
	}

	// Handle set-zone command
	if *setZone != "" {
		if _, err := time.LoadLocation(*setZone); err != nil {
			fatal(fmt.Errorf("unknown zone %q: %v", *setZone, err))
		}
		if config == nil {
			config = &Config{}
		}
		config.Zone = *setZone
		if err := saveConfig(config); err != nil {
			fatal(fmt.Errorf("failed to save config: %v", err))
		}
		fmt.Printf("Default display zone set to: %s\n", *setZone)
		return
	}

	extra := configPhrases(config)

	// Determine display zone (flag > config > default)
	zoneName := determineZone(*zone, config)
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		fatal(fmt.Errorf("unknown zone %q: %v", zoneName, err))
	}

	now := time.Now()
	if *nowArg != "" {
		now, err = resolveQuery(*nowArg, now, extra)
		if err != nil {
			fatal(fmt.Errorf("failed to resolve reference instant: %v", err))
		}
	}

	resolved, err := resolveQuery(query, now, extra)
	if err != nil {
		if errors.Is(err, errUnparseable) {
			// "No results" is a valid outcome for the launcher.
			return
		}
		fatal(err)
	}

	var fb Feedback
	collectItems(&fb, resolved, loc, zoneName)

	if *plain {
		renderPlain(os.Stdout, fb.Items(), !*noColor)
		return
	}
	if err := fb.Finalize(os.Stdout, *alfred); err != nil {
		fatal(err)
	}
}
