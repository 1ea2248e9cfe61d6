package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// Series is a named line of scores for plotting.
type Series struct {
	Name   string
	Values []float64
}

type lineStyle struct {
	name   string
	period int
	on     int
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	scoreMin          = 0.0
	scoreMax          = 100.0
	axisLabelTop      = "100"
	axisLabelMid      = "50"
	axisLabelBottom   = "0"
	axisSeparator     = " │ "
)

var lineStyles = []lineStyle{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
	{name: "dashdot", period: 8, on: 3},
}

var seriesColors = []string{
	"\x1b[36m", // cyan
	"\x1b[35m", // magenta
	"\x1b[33m", // yellow
	"\x1b[32m", // green
	"\x1b[34m", // blue
}

// PlotScores draws series as a braille chart on the fixed 0-100 score scale.
// Each series is resampled to width columns; a non-positive height uses the
// default. The legend lists the last value of every series.
func PlotScores(w io.Writer, title string, series []Series, width, height int, useColor bool) error {
	series = filterSeries(series)
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	width = max(width, minPlotWidth)

	cells := make([][][]uint8, len(series))
	for si, s := range series {
		cells[si] = makeCells(height, width)
		style := lineStyles[si%len(lineStyles)]
		prevX, prevY := -1, -1
		for x, v := range resampleSeries(s.Values, width) {
			px, py := x*2, valueToRow(v, height*4)
			if prevX >= 0 {
				drawLine(prevX, prevY, px, py, func(dx, dy int) {
					if style.shouldPlot(dx) {
						setBrailleDot(cells[si], dx, dy)
					}
				})
			} else if style.shouldPlot(px) {
				setBrailleDot(cells[si], px, py)
			}
			prevX, prevY = px, py
		}
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	labels := makeAxisLabels(height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", len(axisLabelTop), labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			mask, idx := composeCell(cells, x, y)
			ch := brailleFromMask(mask)
			if useColor && idx >= 0 {
				row.WriteString(seriesColors[idx%len(seriesColors)])
				row.WriteRune(ch)
				row.WriteString(colorReset)
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, renderLegend(series, useColor)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// PlotWidthFor returns the chart width that fits next to the axis within
// totalWidth columns.
func PlotWidthFor(totalWidth int) int {
	axisWidth := len(axisLabelTop) + utf8.RuneCountInString(axisSeparator)
	return max(totalWidth-axisWidth, minPlotWidth)
}

func filterSeries(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func makeAxisLabels(height int) []string {
	labels := make([]string, height)
	labels[0] = axisLabelTop
	if height > 2 {
		labels[height/2] = axisLabelMid
	}
	if height > 1 {
		labels[height-1] = axisLabelBottom
	}
	return labels
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return cells
}

// composeCell merges the dots of every series; the first series with a dot
// in the cell decides its colour.
func composeCell(seriesCells [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	colorIdx := -1
	for i, cells := range seriesCells {
		cellMask := cells[y][x]
		if cellMask == 0 {
			continue
		}
		if colorIdx == -1 {
			colorIdx = i
		}
		mask |= cellMask
	}
	return mask, colorIdx
}

func (ls lineStyle) shouldPlot(x int) bool {
	if ls.period <= 1 {
		return true
	}
	if x < 0 {
		x = -x
	}
	return x%ls.period < ls.on
}

// resampleSeries stretches or shrinks values to exactly width points:
// bucket averages when shrinking, linear interpolation when stretching.
func resampleSeries(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(values) >= width {
		for i := range out {
			start := i * len(values) / width
			end := max((i+1)*len(values)/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if len(values) == 1 || width == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := range out {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := min(int(math.Floor(pos)), len(values)-2)
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

// valueToRow maps a score to a dot row, 0 being the top. Scores outside
// 0-100 are clamped.
func valueToRow(v float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := (min(max(v, scoreMin), scoreMax) - scoreMin) / (scoreMax - scoreMin)
	return int(math.Round((1 - pos) * float64(rows-1)))
}

func renderLegend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	marker := brailleFromMask(0x01)
	for i, s := range series {
		label := fmt.Sprintf("%c %s %.1f (%s)", marker, s.Name, s.Values[len(s.Values)-1], lineStyles[i%len(lineStyles)].name)
		if useColor {
			label = seriesColors[i%len(seriesColors)] + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// drawLine walks a Bresenham line between two dot positions.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func setBrailleDot(cells [][]uint8, x, y int) {
	cellY, cellX := y/4, x/2
	if y < 0 || x < 0 || cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

// brailleDotMask follows the Unicode braille dot numbering.
func brailleDotMask(x, y int) uint8 {
	if x == 0 {
		return [4]uint8{0x01, 0x02, 0x04, 0x40}[y]
	}
	return [4]uint8{0x08, 0x10, 0x20, 0x80}[y]
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
