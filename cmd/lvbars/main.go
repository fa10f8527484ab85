// Package main prints a placeholder bar chart as raw heights, HTML, SVG or a
// terminal sparkline.
//
// Settings come from LVBARS_* environment variables, optionally loaded from
// the .env file named by LVBARS_ENV_FILE (default ".env"), and can be
// overridden by flags:
//
//	lvbars -count 32 -seed 97 -format sparkline
//	lvbars -values 3,6,2,9,5 -height 120 -format html
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvbars/chart"
	"github.com/katalvlaran/lvbars/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvbars: ")

	dotEnv := os.Getenv("LVBARS_ENV_FILE")
	if dotEnv == "" {
		dotEnv = ".env"
	}

	cfg, err := config.LoadChart(dotEnv)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	var values string
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of generated bars when no values are given")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the generated bars")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "container height in px")
	flag.IntVar(&cfg.MinBarHeight, "min", cfg.MinBarHeight, "minimum bar height in px")
	flag.IntVar(&cfg.MaxBarHeight, "max", cfg.MaxBarHeight, "maximum bar height in px (0 = height - 24)")
	flag.StringVar(&values, "values", "", "comma-separated raw values (overrides generated bars)")
	flag.StringVar(&cfg.ClassName, "class", cfg.ClassName, "extra CSS classes for html output")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: values, html, svg, sparkline")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "sparkline width in characters (0 = one per bar)")
	flag.Parse()

	if values != "" {
		if cfg.Values, err = parseValues(values); err != nil {
			config.Exitf("Error: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// run builds the chart described by cfg and writes it to w.
func run(w io.Writer, cfg config.Chart) error {
	p, err := chart.New(
		chart.WithValues(cfg.Values...),
		chart.WithBarCount(cfg.Count),
		chart.WithSeed(cfg.Seed),
		chart.WithHeight(cfg.Height),
		chart.WithMinBarHeight(cfg.MinBarHeight),
		chart.WithMaxBarHeight(cfg.MaxBarHeight),
		chart.WithClassName(cfg.ClassName),
	)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case config.FormatHTML:
		err = p.RenderHTML(w)
	case config.FormatSVG:
		err = p.RenderSVG(w)
	case config.FormatSparkline:
		_, err = io.WriteString(w, p.Sparkline(cfg.Width))
	default:
		_, err = fmt.Fprint(w, joinInts(p.Bars()))
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// parseValues splits a comma-separated list of floats.
func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse values: %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
