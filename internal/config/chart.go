package config

import (
	"errors"
	"fmt"
)

// Output formats understood by the CLI.
const (
	FormatValues    = "values"
	FormatHTML      = "html"
	FormatSVG       = "svg"
	FormatSparkline = "sparkline"
)

// ErrUnknownFormat indicates an unsupported Format value.
var ErrUnknownFormat = errors.New("config: unknown output format")

// Chart holds the placeholder chart settings of the CLI.
// Every field can be set through the environment; flags override it.
type Chart struct {
	Count        int       `env:"LVBARS_COUNT" envDefault:"20"`
	Seed         int64     `env:"LVBARS_SEED" envDefault:"13"`
	Height       int       `env:"LVBARS_HEIGHT" envDefault:"160"`
	MinBarHeight int       `env:"LVBARS_MIN_BAR_HEIGHT" envDefault:"8"`
	MaxBarHeight int       `env:"LVBARS_MAX_BAR_HEIGHT" envDefault:"0"`
	Values       []float64 `env:"LVBARS_VALUES" envSeparator:","`
	ClassName    string    `env:"LVBARS_CLASS"`
	Format       string    `env:"LVBARS_FORMAT" envDefault:"values"`
	Width        int       `env:"LVBARS_WIDTH" envDefault:"0"`
}

// LoadChart reads dotEnv (if present) and then the environment.
func LoadChart(dotEnv string) (Chart, error) {
	if err := LoadDotEnv(dotEnv); err != nil {
		return Chart{}, err
	}
	var cfg Chart
	if err := ParseEnv(&cfg); err != nil {
		return Chart{}, err
	}
	return cfg, nil
}

// Validate checks values the chart package would otherwise panic on.
func (c Chart) Validate() error {
	switch c.Format {
	case FormatValues, FormatHTML, FormatSVG, FormatSparkline:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrUnknownFormat)
	}
	if c.Count < 0 || c.Height < 0 || c.MinBarHeight < 0 || c.MaxBarHeight < 0 {
		return fmt.Errorf("count, height and bar heights must be non-negative")
	}
	return nil
}
