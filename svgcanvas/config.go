package svgcanvas

import "fmt"

// Config holds the sizes used when the canvas is not given by the author.
type Config struct {
	// DefaultWidth and DefaultHeight are used when nothing else can be resolved.
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`
	// MinContentSize is the floor of both dimensions of a canvas derived
	// from the viewBox or the content.
	MinContentSize int `toml:"min_content_size"`
	// ContentMargin is added on every side of the content when there is no viewBox.
	ContentMargin int `toml:"content_margin"`
}

// DefaultConfig returns a 800x600 default canvas, a 200px floor and a 20px margin.
func DefaultConfig() Config {
	return Config{
		DefaultWidth:   800,
		DefaultHeight:  600,
		MinContentSize: 200,
		ContentMargin:  20,
	}
}

// Validate checks that every canvas resolved with c is at least one pixel wide.
func (c Config) Validate() error {
	if c.DefaultWidth <= 0 || c.DefaultHeight <= 0 {
		return fmt.Errorf("invalid default canvas %dx%d: dimensions must be positive", c.DefaultWidth, c.DefaultHeight)
	}
	if c.MinContentSize <= 0 {
		return fmt.Errorf("invalid min_content_size %d: must be positive", c.MinContentSize)
	}
	if c.ContentMargin < 0 {
		return fmt.Errorf("invalid content_margin %d: must not be negative", c.ContentMargin)
	}
	return nil
}
