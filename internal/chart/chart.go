// Package chart plots mood values against dates.
package chart

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Labels used by every rendering of the mood chart.
const (
	Title  = "Mood Over Time"
	XLabel = "Date"
	YLabel = "Mood"
)

// The mood axis always covers at least this range.
const (
	MinMood = 1.0
	MaxMood = 5.0
)

// ErrNoData is returned when a renderer that cannot draw an empty plot is
// given no points.
var ErrNoData = errors.New("no mood data to plot")

// Point is one (date, mood) sample.
type Point struct {
	Date time.Time
	Mood float64
}

// SampleSeries returns the ten synthetic points shown at startup: today and
// the nine days before it, newest first, with moods cycling 1 through 5.
func SampleSeries(today time.Time) []Point {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	points := make([]Point, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, Point{
			Date: day.AddDate(0, 0, -i),
			Mood: float64(i%5 + 1),
		})
	}
	return points
}

// moodRange returns the y-axis bounds for points.
func moodRange(points []Point) (float64, float64) {
	lo, hi := MinMood, MaxMood
	for _, p := range points {
		lo = math.Min(lo, p.Mood)
		hi = math.Max(hi, p.Mood)
	}
	return lo, hi
}

// dateRange returns the earliest and latest dates in points.
func dateRange(points []Point) (time.Time, time.Time) {
	lo, hi := points[0].Date, points[0].Date
	for _, p := range points[1:] {
		if p.Date.Before(lo) {
			lo = p.Date
		}
		if p.Date.After(hi) {
			hi = p.Date
		}
	}
	return lo, hi
}

const (
	gutter      = 5 // y tick label (3) + space + axis rune
	minPlotW    = 10
	minPlotH    = 5
	chromeLines = 5 // title, y label, x axis, x ticks, x label
	markerRune  = '●'
	lineRune    = '·'
)

// Canvas is a character-cell plot surface. Draw clears it and redraws the
// whole figure; nothing is kept between draws except the size.
type Canvas struct {
	width  int
	height int
	out    string
}

// NewCanvas returns a canvas of the given size in terminal cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the surface size. The next Draw uses the new size.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, gutter+minPlotW)
	c.height = max(height, chromeLines+minPlotH)
}

// Size returns the surface size in cells.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// String returns the most recently drawn figure.
func (c *Canvas) String() string {
	return c.out
}

// Draw clears the surface and plots points in the given row order.
func (c *Canvas) Draw(points []Point) {
	pw := c.width - gutter
	ph := c.height - chromeLines

	grid := make([][]rune, ph)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", pw))
	}

	yMin, yMax := moodRange(points)
	row := func(m float64) int {
		return int(math.Round((yMax - m) / (yMax - yMin) * float64(ph-1)))
	}

	var col func(t time.Time) int
	if len(points) > 0 {
		tMin, tMax := dateRange(points)
		span := tMax.Sub(tMin)
		col = func(t time.Time) int {
			if span == 0 {
				return pw / 2
			}
			return int(math.Round(float64(t.Sub(tMin)) / float64(span) * float64(pw-1)))
		}

		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			line(grid, col(a.Date), row(a.Mood), col(b.Date), row(b.Mood))
		}
		for _, p := range points {
			grid[row(p.Mood)][col(p.Date)] = markerRune
		}
	} else {
		msg := []rune("no data")
		start := max((pw-len(msg))/2, 0)
		copy(grid[ph/2][start:], msg)
	}

	ticks := make(map[int]string)
	for m := math.Ceil(yMin); m <= yMax; m++ {
		ticks[row(m)] = formatTick(m)
	}

	var b strings.Builder
	b.WriteString(center(Title, c.width))
	b.WriteByte('\n')
	b.WriteString(padRight(YLabel, c.width))
	b.WriteByte('\n')
	for i, r := range grid {
		if label, ok := ticks[i]; ok {
			b.WriteString(padLeft(label, gutter-2) + " ┤")
		} else {
			b.WriteString(strings.Repeat(" ", gutter-1) + "│")
		}
		b.WriteString(string(r))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", gutter-1) + "└" + strings.Repeat("─", pw))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", gutter) + dateTicks(points, pw, col))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", gutter) + center(XLabel, pw))

	c.out = b.String()
}

// line draws a Bresenham segment into empty cells of grid.
func line(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if grid[y0][x0] == ' ' {
			grid[y0][x0] = lineRune
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// dateTicks lays out MM-DD labels under their columns. The earliest and
// latest dates are placed first; other labels are skipped if they would
// touch one already placed.
func dateTicks(points []Point, width int, col func(time.Time) int) string {
	cells := []rune(strings.Repeat(" ", width))
	if len(points) == 0 {
		return string(cells)
	}

	dates := make([]time.Time, len(points))
	for i, p := range points {
		dates[i] = p.Date
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	order := []time.Time{dates[0], dates[len(dates)-1]}
	if len(dates) > 2 {
		order = append(order, dates[1:len(dates)-1]...)
	}

	used := make([]bool, width)
	for _, d := range order {
		label := []rune(d.Format("01-02"))
		start := col(d) - len(label)/2
		start = min(max(start, 0), width-len(label))
		end := start + len(label)

		free := true
		for i := max(start-1, 0); i < min(end+1, width); i++ {
			if used[i] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		copy(cells[start:], label)
		for i := start; i < end; i++ {
			used[i] = true
		}
	}
	return string(cells)
}

func formatTick(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func padLeft(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
