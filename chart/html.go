package chart

import (
	"fmt"
	"io"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/common"
	"github.com/colorfulnotion/hashchart/log"
	"github.com/colorfulnotion/hashchart/results"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const screenDPI = 96

// BuildHTML lays out the same chart as Build as an interactive echarts line
// chart. Both axes are value axes so points keep file order. The legend title
// is shown as the chart subtitle.
func BuildHTML(t *results.Table, cfg *Config) (*charts.Line, error) {
	if cfg == nil {
		cfg = DefaultConfig(results.WithHeaderMultiSeries)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: cfg.Title,
			Width:     fmt.Sprintf("%.0fpx", cfg.Width.Dots(screenDPI)),
			Height:    fmt.Sprintf("%.0fpx", cfg.Height.Dots(screenDPI)),
		}),
		// echarts legends have no title of their own
		charts.WithTitleOpts(opts.Title{Title: cfg.Title, Subtitle: cfg.LegendTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      cfg.XLabel,
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      cfg.YLabel,
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	for i, name := range t.Series {
		pts := t.Points(i)
		data := make([]opts.LineData, 0, len(pts))
		for _, pt := range pts {
			data = append(data, opts.LineData{Value: []interface{}{pt.X, pt.Y}})
		}
		line.AddSeries(name, data, charts.WithLineChartOpts(opts.LineChart{
			Symbol:     "circle",
			ShowSymbol: opts.Bool(true),
		}))
	}
	return line, nil
}

// RenderHTML writes the echarts page for t to out atomically.
func RenderHTML(t *results.Table, cfg *Config, out string) error {
	line, err := BuildHTML(t, cfg)
	if err != nil {
		return err
	}
	err = common.WriteFileAtomic(out, func(w io.Writer) error {
		return line.Render(w)
	})
	if err != nil {
		log.Error(log.ChartModule, "Chart not written", "path", out, "err", err)
		return fmt.Errorf("write %s: %w: %w", out, charterrors.ErrRenderFailed, err)
	}
	log.Info(log.ChartModule, "Generated chart", "path", out, "format", HTML, "series", len(t.Series), "rows", len(t.Rows))
	return nil
}
