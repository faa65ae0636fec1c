// Package cli implements the svgcanvas command-line interface.
//
// The dims and bounds commands resolve the canvas of SVG files, read from
// the arguments or from stdin, and print one result per input, in the order
// of the arguments. Inputs are processed concurrently by a bounded pool.
//
// # Configuration
//
// The --config flag points to a TOML file overriding the default canvas,
// the content floor and the content margin:
//
//	default_width = 1024
//	default_height = 768
//	min_content_size = 200
//	content_margin = 20
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// reports the rule used for every canvas.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
	"github.com/benoitkugler/svgcanvas/svgparse"
)

const (
	appName = "svgcanvas"

	// defaultWorkers is the number of files resolved at the same time.
	defaultWorkers = 10
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdin  io.Reader
	stdout io.Writer

	configPath string
	verbose    bool
	json       bool
	workers    int
	strict     bool

	config svgcanvas.Config
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		workers: defaultWorkers,
		config:  svgcanvas.DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetIO replaces the standard input and output of the commands.
func (c *CLI) SetIO(stdin io.Reader, stdout io.Writer) {
	c.stdin, c.stdout = stdin, stdout
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "svgcanvas resolves the pixel size of SVG documents",
		Long: `svgcanvas decides the canvas at which SVG documents should be rasterized.

It reads the declared width and height, the viewBox, or the drawn content,
and always answers with a usable size, even for malformed documents.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "TOML configuration file")
	flags.BoolVar(&c.json, "json", false, "print one JSON object per input")
	flags.IntVar(&c.workers, "workers", defaultWorkers, "number of inputs resolved concurrently")
	flags.BoolVar(&c.strict, "strict", false, "treat unsupported elements as malformed markup")

	root.AddCommand(c.dimsCommand())
	root.AddCommand(c.boundsCommand())

	return root
}

// resolver returns the resolver used by the commands.
func (c *CLI) resolver() *svgcanvas.Resolver {
	r := svgcanvas.New(c.config, c.Logger)
	if c.strict {
		r.ErrorMode = svgparse.StrictErrorMode
	} else if c.verbose {
		r.ErrorMode = svgparse.WarnErrorMode
	}
	return r
}
