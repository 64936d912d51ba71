package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

// ParseFlags reads the root flags (they apply to every subcommand) and
// returns the options plus the remaining args. getenv supplies the defaults,
// so a flag always wins over its environment variable.
func ParseFlags(args []string, getenv func(string) string) (Options, []string, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	color := env("TADA_COLOR", "auto")
	if getenv("NO_COLOR") != "" {
		color = "never"
	}

	var opt Options
	var ids string
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opt.Group, "group", false, "group output by pending/done")
	fs.BoolVar(&opt.JSON, "json", false, "print results as JSON")
	fs.StringVar(&opt.DataPath, "data", env("TADA_DATA", ""), "JSON seed file (default: built-in seed)")
	fs.StringVar(&opt.Theme, "theme", env("TADA_THEME", ""), "color theme: classic, neon or mono")
	fs.StringVar(&opt.Color, "color", color, "colors: auto, always or never")
	fs.StringVar(&ids, "ids", env("TADA_IDS", "sequence"), "id strategy for new todos: sequence or random")
	if err := fs.Parse(args); err != nil {
		return Options{}, nil, err
	}

	switch strings.ToLower(ids) {
	case "sequence":
	case "random":
		opt.IDs = store.RandomRange{}
	default:
		return Options{}, nil, fmt.Errorf("unknown id strategy: %s", ids)
	}

	opt.Color = strings.ToLower(opt.Color)
	switch opt.Color {
	case "auto", "always", "never":
	default:
		return Options{}, nil, fmt.Errorf("unknown color mode: %s", opt.Color)
	}
	return opt, fs.Args(), nil
}

// ApplyDisplay sets the theme and color mode for all output.
func ApplyDisplay(opt Options) {
	ui.SetTheme(opt.Theme)
	ui.SetColorForcing(opt.Color == "always", opt.Color == "never")
}
