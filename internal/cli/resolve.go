package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
)

const stdinArg = "-"

// resolveFunc is either Resolver.Dimensions or Resolver.Bounds.
type resolveFunc func(r *svgcanvas.Resolver, markup string) svgcanvas.Resolution

func (c *CLI) dimsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dims [file.svg...]",
		Short: "Print the declared canvas of SVG documents",
		Long: `Print the declared canvas of SVG documents.

The canvas is given by the width and height attributes of the root element,
then by its viewBox, and defaults to 800x600. With no file, or with '-',
the document is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args, (*svgcanvas.Resolver).Dimensions)
		},
	}
}

func (c *CLI) boundsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [file.svg...]",
		Short: "Print a canvas fitting the content of SVG documents",
		Long: `Print a canvas fitting the content of SVG documents.

Explicit width and height still win. Otherwise the bounding boxes of the
shapes are computed, and the viewBox is enlarged when they overflow it.
With no file, or with '-', the document is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args, (*svgcanvas.Resolver).Bounds)
		},
	}
}

// runResolve resolves every input with a bounded pool of workers,
// and prints the results in the order of the inputs.
func (c *CLI) runResolve(ctx context.Context, inputs []string, resolve resolveFunc) error {
	if c.workers < 1 {
		return fmt.Errorf("invalid --workers %d: must be positive", c.workers)
	}
	if len(inputs) == 0 {
		inputs = []string{stdinArg}
	}
	if countStdin(inputs) > 1 {
		return errors.New("stdin can only be read once")
	}

	r := c.resolver()
	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, input := range inputs {
		i, input := i, input // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			markup, err := c.readInput(input)
			if err != nil {
				return fmt.Errorf("read %s: %w", displayName(input), err)
			}
			res := resolve(r, markup)
			c.Logger.Debug("resolved", "input", displayName(input), "canvas", res.Canvas, "source", res.Source)
			results[i] = newResult(displayName(input), res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if c.json {
		return writeJSON(c.stdout, results)
	}
	return writeText(c.stdout, results)
}

func (c *CLI) readInput(input string) (string, error) {
	if input == stdinArg {
		data, err := io.ReadAll(c.stdin)
		return string(data), err
	}
	data, err := os.ReadFile(input)
	return string(data), err
}

func countStdin(inputs []string) int {
	n := 0
	for _, in := range inputs {
		if in == stdinArg {
			n++
		}
	}
	return n
}

func displayName(input string) string {
	if input == stdinArg {
		return "<stdin>"
	}
	return input
}
