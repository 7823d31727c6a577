package plot

import (
	"io"
	"strconv"

	"github.com/drakos74/big-o/internal/math"
	"github.com/olekukonko/tablewriter"
)

// Table writes the measured sizes and timings side by side,
// optionally with the fitted prediction for each size.
func Table(w io.Writer, sizes []float64, times []float64, fit func(float64) float64) {

	header := []string{"n", "seconds"}
	if fit != nil {
		header = append(header, "fitted")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for i := range sizes {
		row := []string{
			strconv.Itoa(int(sizes[i])),
			math.Format(times[i]),
		}
		if fit != nil {
			row = append(row, math.Format(fit(sizes[i])))
		}
		table.Append(row)
	}
	table.Render()
}
