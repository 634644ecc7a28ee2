package charts

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

func assertRendered(t *testing.T, path string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected chart file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("chart file %s is empty", path)
	}
}

func TestHistogram(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Histogram("bpm", []float64{90, 100, 110, 120, 180}, 4)
	assertRendered(t, path, err)
	if filepath.Base(path) != "hist_bpm.html" {
		t.Errorf("unexpected filename %s", path)
	}
}

func TestBoxPlot(t *testing.T) {
	r := NewRenderer(t.TempDir())
	summaries := []stats.Summary{
		{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5},
		{Min: 10, Q1: 20, Median: 30, Q3: 40, Max: 50},
	}
	path, err := r.BoxPlot("features", []string{"a", "b"}, summaries)
	assertRendered(t, path, err)
}

func TestBar(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Bar("mode", []string{"Major", "Minor"}, []int{550, 403})
	assertRendered(t, path, err)
}

func TestPie(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Pie("mode", []string{"Major", "Minor"}, []int{550, 403})
	assertRendered(t, path, err)
}

func TestScatter(t *testing.T) {
	r := NewRenderer(t.TempDir())
	xs := []float64{1, 2, math.NaN(), 4}
	ys := []float64{2, 4, 6, math.NaN()}
	path, err := r.Scatter("danceability_pct", "energy_pct", xs, ys)
	assertRendered(t, path, err)
}

func TestHeatmap(t *testing.T) {
	r := NewRenderer(t.TempDir())
	m := stats.Matrix{
		Columns: []string{"a", "b"},
		Values:  [][]float64{{1, 0.5}, {0.5, 1}},
	}
	path, err := r.Heatmap(m)
	assertRendered(t, path, err)
}

func TestPage(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Page("report.html",
		HistogramChart("bpm", []float64{90, 100, 110}, 2),
		BarChart("mode", []string{"Major", "Minor"}, []int{2, 1}),
	)
	assertRendered(t, path, err)
}

func TestRendererCreatesOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "charts")
	r := NewRenderer(dir)
	path, err := r.Bar("key", []string{"C#"}, []int{1})
	assertRendered(t, path, err)
	if !strings.HasPrefix(path, dir) {
		t.Errorf("expected path under %s, got %s", dir, path)
	}
}
