package chart

import (
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// RenderPNG writes the mood chart for points as a PNG image of the given
// pixel size. Points are joined in the given row order.
func RenderPNG(w io.Writer, points []Point, width, height int) error {
	if len(points) == 0 {
		return ErrNoData
	}

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date
		ys[i] = p.Mood
	}

	yMin, yMax := moodRange(points)
	xAxis := gochart.XAxis{
		Name:           XLabel,
		ValueFormatter: gochart.TimeDateValueFormatter,
	}
	// go-chart cannot draw a zero-width x range; widen a single day by half a day each side.
	if tMin, tMax := dateRange(points); tMin.Equal(tMax) {
		xAxis.Range = &gochart.ContinuousRange{
			Min: gochart.TimeToFloat64(tMin.Add(-12 * time.Hour)),
			Max: gochart.TimeToFloat64(tMax.Add(12 * time.Hour)),
		}
	}

	ch := gochart.Chart{
		Title:      Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis: gochart.YAxis{
			Name:  YLabel,
			Range: &gochart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    YLabel,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: gochart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    gochart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}
	return ch.Render(gochart.PNG, w)
}
