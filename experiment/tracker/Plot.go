package tracker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name string
	Data []float64
}

// Plot renders each series as a line over episodes into an HTML page
func Plot(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("plot: no series to plot")
	}

	episodes := 0
	for _, s := range series {
		episodes = max(episodes, len(s.Data))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)

	x := make([]string, episodes)
	for i := range x {
		x[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(x)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Data))
		for _, v := range s.Data {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}

// PlotFile renders the plot into the HTML file at path, creating
// parent directories as needed
func PlotFile(path, title string, series ...Series) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("plotFile: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plotFile: %v", err)
	}
	defer f.Close()

	return Plot(f, title, series...)
}
