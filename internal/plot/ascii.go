package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
)

var palette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Cyan,
	asciigraph.Magenta,
}

// Series is a named sequence of y values, plotted over the index of the sample.
type Series struct {
	Name string
	Y    []float64
}

// NewSeries creates a new Series.
func NewSeries(name string, y []float64) Series {
	return Series{Name: name, Y: y}
}

// Render draws all series on the same axes as a terminal line chart,
// followed by a legend mapping colors to series names.
func Render(w io.Writer, caption string, height int, series ...Series) error {

	if len(series) == 0 {
		return fmt.Errorf("nothing to plot for '%s'", caption)
	}

	data := make([][]float64, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	legend := make([]string, len(series))
	for i, s := range series {
		if len(s.Y) == 0 {
			return fmt.Errorf("empty series '%s' for '%s'", s.Name, caption)
		}
		data[i] = s.Y
		colors[i] = palette[i%len(palette)]
		legend[i] = fmt.Sprintf("%s=%s", colorName(colors[i]), s.Name)
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)

	_, err := fmt.Fprintf(w, "%s\n%s\n", graph, strings.Join(legend, " "))
	return err
}

func colorName(c asciigraph.AnsiColor) string {
	switch c {
	case asciigraph.Red:
		return "red"
	case asciigraph.Blue:
		return "blue"
	case asciigraph.Green:
		return "green"
	case asciigraph.Yellow:
		return "yellow"
	case asciigraph.Cyan:
		return "cyan"
	case asciigraph.Magenta:
		return "magenta"
	}
	return "plain"
}
