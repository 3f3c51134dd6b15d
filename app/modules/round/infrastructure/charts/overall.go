package roundcharts

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// playerCol and the last column of the overall table feed the chart.
	playerCol = 2

	barWidth   = 50
	barSpacing = 40
	minWidth   = 600
	height     = 400
)

var (
	background = drawing.ColorFromHex("f7f5ef")
	barColor   = drawing.ColorFromHex("1f4d3a")
	textColor  = drawing.ColorFromHex("20211f")
)

// Bar is one player's total in the overall table.
type Bar struct {
	Player string
	Total  float64
}

// OverallBars reads the data rows of an overall table. The first row is the
// header; rows without a player are skipped and non-numeric totals count as 0.
func OverallBars(grid rounddomain.Grid) []Bar {
	var bars []Bar
	for i, row := range grid {
		if i == 0 || len(row) <= playerCol {
			continue
		}
		player := strings.TrimSpace(fmt.Sprint(row[playerCol]))
		if player == "" {
			continue
		}
		bars = append(bars, Bar{Player: player, Total: number(row[len(row)-1])})
	}
	return bars
}

// RenderOverall draws the totals of an overall table as a PNG bar chart.
func RenderOverall(grid rounddomain.Grid, title string) ([]byte, error) {
	bars := OverallBars(grid)
	if len(bars) == 0 {
		return renderNoDataPlaceholder("No overall standings yet")
	}

	values := make([]chart.Value, len(bars))
	low, high := 0.0, bars[0].Total
	for i, b := range bars {
		values[i] = chart.Value{
			Label: b.Player,
			Value: b.Total,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		}
		low = min(low, b.Total)
		high = max(high, b.Total)
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: textColor},
		Width:      max(minWidth, len(bars)*(barWidth+barSpacing)+120),
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: background,
			Padding:   chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: background},
		XAxis:  chart.Style{FontColor: textColor},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: textColor},
			// A flat range breaks tick generation.
			Range: &chart.ContinuousRange{Min: low, Max: max(high, low+1)},
		},
		Bars: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render overall chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws msg straight onto a PNG canvas. chart.Chart
// refuses to render without a series, so it is not used here.
func renderNoDataPlaceholder(msg string) ([]byte, error) {
	const width, height = 400, 200

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart font: %w", err)
	}
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create placeholder canvas: %w", err)
	}

	r.SetFillColor(background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.LineTo(0, 0)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(textColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func number(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
