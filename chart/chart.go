package chart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/common"
	"github.com/colorfulnotion/hashchart/log"
	"github.com/colorfulnotion/hashchart/results"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Chart is a built but unsaved comparison chart.
type Chart struct {
	Plot *plot.Plot
	// Lines holds one line per series, in table column order.
	Lines []*plotter.Line
	// Legend lists the legend entries top to bottom; the legend title, when
	// set, is the first entry.
	Legend []string
}

// Build lays out one line with circle markers per series. Points are joined
// in file order, never sorted by line count. A table without rows yields
// empty axes with the full legend.
func Build(t *results.Table, cfg *Config) (*Chart, error) {
	if cfg == nil {
		cfg = DefaultConfig(results.WithHeaderMultiSeries)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	c := &Chart{Plot: p}
	p.Legend.Top = true
	p.Legend.Left = true
	if cfg.LegendTitle != "" {
		p.Legend.Add(cfg.LegendTitle)
		c.Legend = append(c.Legend, cfg.LegendTitle)
	}

	for i, name := range t.Series {
		line, points, err := plotter.NewLinePoints(seriesXYs(t, i))
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", name, err)
		}
		clr := plotutil.Color(i)
		line.Color = clr
		line.Width = vg.Points(2)
		points.Color = clr
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)

		// a header only table still gets its legend and axes
		if len(line.XYs) > 0 {
			p.Add(line, points)
		}
		p.Legend.Add(name, line, points)
		c.Lines = append(c.Lines, line)
		c.Legend = append(c.Legend, name)
		log.Trace(log.ChartModule, "Added series", "name", name, "points", len(t.Rows))
	}
	return c, nil
}

func seriesXYs(t *results.Table, i int) plotter.XYs {
	pts := t.Points(i)
	xys := make(plotter.XYs, len(pts))
	for j, pt := range pts {
		xys[j].X = pt.X
		xys[j].Y = pt.Y
	}
	return xys
}

// Render builds the chart for t and saves it to out, overwriting any file
// there. The image is encoded into a temp file and renamed into place, so a
// failed render never leaves a partial image at out.
func Render(t *results.Table, cfg *Config, out string) error {
	if cfg == nil {
		cfg = DefaultConfig(results.WithHeaderMultiSeries)
	}
	format := cfg.Format
	if format == "" {
		var err error
		if format, err = FormatFromPath(out); err != nil {
			return err
		}
	}
	if format == HTML {
		return RenderHTML(t, cfg, out)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	c, err := Build(t, cfg)
	if err != nil {
		return err
	}
	wt, err := c.Plot.WriterTo(cfg.Width, cfg.Height, string(format))
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", format, charterrors.ErrRenderFailed, err)
	}
	err = common.WriteFileAtomic(out, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	})
	if err != nil {
		log.Error(log.ChartModule, "Chart not written", "path", out, "err", err)
		return fmt.Errorf("write %s: %w: %w", out, charterrors.ErrRenderFailed, err)
	}
	log.Info(log.ChartModule, "Generated chart", "path", out, "format", format, "series", len(t.Series), "rows", len(t.Rows))
	return nil
}
