package renderer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kulikvl/weblog-analysis/internal/model"
)

const (
	EndpointsFile = "top_endpoints.png"
	StatusFile    = "status_distribution.png"
)

const (
	endpointsWidth  = 1000
	endpointsHeight = 600
	statusSize      = 600

	endpointsAxisName = "Endpoint"
	noDataLabel       = "no data"
)

var (
	skyBlue   = drawing.ColorFromHex("87CEEB")
	lightGray = drawing.ColorFromHex("D3D3D3")
)

// Renderer writes the endpoint and status charts into Dir.
type Renderer struct {
	Dir string
	// Out receives one confirmation line per written file.
	Out io.Writer
	// TopEndpoints limits the bar chart; 0 keeps every endpoint.
	TopEndpoints int
}

// Render writes both charts and returns their paths. An empty summary
// still produces both files, drawn as placeholders.
func (r *Renderer) Render(summary model.Summary) ([]string, error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	endpoints := summary.Endpoints
	if r.TopEndpoints > 0 && len(endpoints) > r.TopEndpoints {
		endpoints = endpoints[:r.TopEndpoints]
	}

	endpointsPath := filepath.Join(r.Dir, EndpointsFile)
	if err := writeFile(endpointsPath, func(w io.Writer) error {
		return RenderTopEndpoints(w, endpoints)
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.Out, "📊 Saved: %s\n", endpointsPath)

	statusPath := filepath.Join(r.Dir, StatusFile)
	if err := writeFile(statusPath, func(w io.Writer) error {
		return RenderStatusDistribution(w, summary.Statuses)
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.Out, "📈 Saved: %s\n", statusPath)

	return []string{endpointsPath, statusPath}, nil
}

// RenderTopEndpoints draws endpoint hit counts as a bar chart, in the given order.
func RenderTopEndpoints(w io.Writer, counts []model.EndpointCount) error {
	graph := endpointsChart(counts)
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render endpoints chart: %w", err)
	}
	return nil
}

func endpointsChart(counts []model.EndpointCount) chart.BarChart {
	maxHits := 0
	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, chart.Value{
			Label: c.Endpoint,
			Value: float64(c.Hits),
			Style: chart.Style{
				FillColor:   skyBlue,
				StrokeColor: skyBlue,
			},
		})
		if c.Hits > maxHits {
			maxHits = c.Hits
		}
	}

	// go-chart refuses a bar chart without bars or with a zero range
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: noDataLabel, Value: 0})
	}
	yMax := float64(maxHits)
	if maxHits == 0 {
		yMax = 1
	}

	return chart.BarChart{
		Title:  "Top Requested Endpoints",
		Width:  endpointsWidth,
		Height: endpointsHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 40},
		},
		BarWidth:     40,
		UseBaseValue: true,
		BaseValue:    0,
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name:  "Hit Count",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
		// BarChart.XAxis is a plain Style with no name, so the name is
		// drawn as an element along the bottom edge.
		Elements: []chart.Renderable{xAxisName(endpointsAxisName, endpointsHeight)},
	}
}

func xAxisName(name string, height int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			FontSize:  10,
			FontColor: drawing.ColorBlack,
		}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)

		box := r.MeasureText(name)
		x := canvasBox.Left + (canvasBox.Width()-box.Width())/2
		r.Text(name, x, height-12)
	}
}

// RenderStatusDistribution draws each status' share as a pie slice labelled
// with its percentage.
func RenderStatusDistribution(w io.Writer, counts []model.StatusCount) error {
	pie := statusChart(counts)
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render status chart: %w", err)
	}
	return nil
}

func statusChart(counts []model.StatusCount) chart.PieChart {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	var values []chart.Value
	if total == 0 {
		// A pie needs one non-zero value
		values = []chart.Value{{
			Label: noDataLabel,
			Value: 1,
			Style: chart.Style{FillColor: lightGray, StrokeColor: lightGray},
		}}
	} else {
		values = make([]chart.Value, len(counts))
		for i, c := range counts {
			values[i] = chart.Value{
				Label: fmt.Sprintf("%s (%.1f%%)", c.Status, float64(c.Count)/float64(total)*100),
				Value: float64(c.Count),
			}
		}
	}

	return chart.PieChart{
		Title:  "Status Code Distribution",
		Width:  statusSize,
		Height: statusSize,
		Values: values,
	}
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
