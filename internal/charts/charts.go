// Package charts renders the EDA chart suite as self-contained HTML files
// using go-echarts.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

// Renderer writes charts into OutDir, creating it on first use.
type Renderer struct {
	OutDir string
}

func NewRenderer(outDir string) *Renderer {
	return &Renderer{OutDir: outDir}
}

type renderable interface {
	Render(w io.Writer) error
}

func (r *Renderer) write(filename string, c renderable) (string, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("creating chart dir: %w", err)
	}
	path := filepath.Join(r.OutDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := c.Render(f); err != nil {
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	return path, nil
}

// Histogram renders a binned bar chart of xs. bins <= 0 picks the count by
// Sturges' rule.
func (r *Renderer) Histogram(column string, xs []float64, bins int) (string, error) {
	return r.write("hist_"+column+".html", HistogramChart(column, xs, bins))
}

func HistogramChart(column string, xs []float64, bins int) *charts.Bar {
	binned := BinValues(xs, bins)
	labels := make([]string, len(binned))
	data := make([]opts.BarData, len(binned))
	for i, b := range binned {
		labels[i] = fmt.Sprintf("%.4g", (b.Lo+b.Hi)/2)
		data[i] = opts.BarData{Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Histogram of " + column}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	bar.SetXAxis(labels).AddSeries(column, data)
	return bar
}

// BoxPlot renders one box per column using the same five-number summary and
// IQR whiskers as the outlier report.
func (r *Renderer) BoxPlot(name string, columns []string, summaries []stats.Summary) (string, error) {
	return r.write("box_"+name+".html", BoxPlotChart(name, columns, summaries))
}

func BoxPlotChart(name string, columns []string, summaries []stats.Summary) *charts.BoxPlot {
	data := make([]opts.BoxPlotData, len(summaries))
	for i, s := range summaries {
		data[i] = opts.BoxPlotData{
			Value: []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max},
		}
	}
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Boxplot of " + name}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	box.SetXAxis(columns).AddSeries(name, data)
	return box
}

// Bar renders a value-count distribution for a categorical column.
func (r *Renderer) Bar(column string, labels []string, counts []int) (string, error) {
	return r.write("bar_"+column+".html", BarChart(column, labels, counts))
}

func BarChart(column string, labels []string, counts []int) *charts.Bar {
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribution of " + column}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	bar.SetXAxis(labels).AddSeries(column, data)
	return bar
}

// Pie renders a share-of-total pie for a categorical column.
func (r *Renderer) Pie(column string, labels []string, counts []int) (string, error) {
	return r.write("pie_"+column+".html", PieChart(column, labels, counts))
}

func PieChart(column string, labels []string, counts []int) *charts.Pie {
	data := make([]opts.PieData, len(counts))
	for i, c := range counts {
		data[i] = opts.PieData{Name: labels[i], Value: c}
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Share of " + column}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	pie.AddSeries(column, data)
	return pie
}

// Scatter renders ys against xs. Rows where either value is NaN are skipped.
func (r *Renderer) Scatter(xcol, ycol string, xs, ys []float64) (string, error) {
	return r.write("scatter_"+xcol+"_"+ycol+".html", ScatterChart(xcol, ycol, xs, ys))
}

func ScatterChart(xcol, ycol string, xs, ys []float64) *charts.Scatter {
	var labels []string
	var data []opts.ScatterData
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if xs[i] != xs[i] || ys[i] != ys[i] {
			continue
		}
		labels = append(labels, fmt.Sprintf("%.6g", xs[i]))
		data = append(data, opts.ScatterData{Value: ys[i], SymbolSize: 5})
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: ycol + " vs " + xcol}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: xcol}),
		charts.WithYAxisOpts(opts.YAxis{Name: ycol}),
	)
	scatter.SetXAxis(labels).AddSeries(ycol, data)
	return scatter
}

// Heatmap renders a correlation matrix, colored from -1 to 1.
func (r *Renderer) Heatmap(m stats.Matrix) (string, error) {
	return r.write("correlation_heatmap.html", HeatmapChart(m))
}

func HeatmapChart(m stats.Matrix) *charts.HeatMap {
	var data []opts.HeatMapData
	for i := range m.Columns {
		for j := range m.Columns {
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{i, j, m.Values[i][j]},
			})
		}
	}
	heat := charts.NewHeatMap()
	heat.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correlation matrix"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: m.Columns}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -1,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#2f6ebf", "#f7f7f7", "#c23531"},
			},
		}),
	)
	heat.SetXAxis(m.Columns).AddSeries("r", data)
	return heat
}

// Page combines charts into a single scrollable HTML page.
func (r *Renderer) Page(filename string, cs ...components.Charter) (string, error) {
	page := components.NewPage()
	page.AddCharts(cs...)
	return r.write(filename, page)
}
