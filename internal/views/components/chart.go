package components

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ChartValues is the sample series shown on the dashboard.
var ChartValues = []float64{30, 50, 40, 70, 45, 80, 65, 90, 75, 85, 95, 88}

const (
	chartMaxValue    = 100
	chartDefaultW    = 400
	chartDefaultH    = 160
	chartDotSize     = 8
	chartLineWidth   = 3
	chartAreaTopA    = 40
	chartAreaBottomA = 5
)

// ChartPoints maps values onto a width x height box, y growing downwards.
// Values are scaled against maxValue and spread evenly along x.
func ChartPoints(values []float64, width, height, maxValue float32) []fyne.Position {
	if len(values) == 0 || maxValue <= 0 {
		return nil
	}
	var stepX float32
	if len(values) > 1 {
		stepX = width / float32(len(values)-1)
	}
	points := make([]fyne.Position, len(values))
	for i, v := range values {
		points[i] = fyne.NewPos(float32(i)*stepX, height-float32(v)/maxValue*height)
	}
	return points
}

// LineYAt returns the y of the polyline through points at x, clamped to the
// first and last points.
func LineYAt(points []fyne.Position, x float32) float32 {
	if len(points) == 0 {
		return 0
	}
	if x <= points[0].X {
		return points[0].Y
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if x <= b.X {
			if b.X == a.X {
				return b.Y
			}
			t := (x - a.X) / (b.X - a.X)
			return a.Y + t*(b.Y-a.Y)
		}
	}
	return points[len(points)-1].Y
}

func lerpColor(a, b color.NRGBA, t float32) color.NRGBA {
	mix := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t) }
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Chart is a filled line chart drawn in the accent colours of the active theme.
type Chart struct {
	widget.BaseWidget

	mu     sync.RWMutex
	values []float64
	middle color.NRGBA
	end    color.NRGBA
}

// NewChart creates a chart of values coloured from middle to end.
func NewChart(values []float64, middle, end color.NRGBA) *Chart {
	c := &Chart{values: append([]float64(nil), values...), middle: middle, end: end}
	c.ExtendBaseWidget(c)
	return c
}

// SetAccent recolours the chart.
func (c *Chart) SetAccent(middle, end color.NRGBA) {
	c.mu.Lock()
	c.middle, c.end = middle, end
	c.mu.Unlock()
	c.Refresh()
}

func (c *Chart) accent() (color.NRGBA, color.NRGBA) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.middle, c.end
}

// CreateRenderer creates the renderer for Chart
func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{chart: c}
	r.area = canvas.NewRasterWithPixels(r.areaPixel)
	r.objects = append(r.objects, r.area)

	for i := 0; i < len(c.values)-1; i++ {
		l := canvas.NewLine(color.Transparent)
		l.StrokeWidth = chartLineWidth
		r.lines = append(r.lines, l)
		r.objects = append(r.objects, l)
	}
	for range c.values {
		dot := canvas.NewCircle(color.Transparent)
		dot.StrokeColor = color.White
		dot.StrokeWidth = 2
		r.dots = append(r.dots, dot)
		r.objects = append(r.objects, dot)
	}
	r.Refresh()
	return r
}

type chartRenderer struct {
	chart   *Chart
	area    *canvas.Raster
	lines   []*canvas.Line
	dots    []*canvas.Circle
	objects []fyne.CanvasObject

	// raster state, in pixels of the last area render
	mu       sync.Mutex
	rasterW  int
	rasterH  int
	rasterPt []fyne.Position
}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.area.Resize(size)
	r.area.Move(fyne.NewPos(0, 0))

	points := ChartPoints(r.chart.values, size.Width, size.Height, chartMaxValue)
	for i, l := range r.lines {
		l.Position1 = points[i]
		l.Position2 = points[i+1]
	}
	half := float32(chartDotSize) / 2
	for i, dot := range r.dots {
		dot.Move(fyne.NewPos(points[i].X-half, points[i].Y-half))
		dot.Resize(fyne.NewSize(chartDotSize, chartDotSize))
	}
}

func (r *chartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(chartDefaultW, chartDefaultH)
}

func (r *chartRenderer) Refresh() {
	middle, end := r.chart.accent()
	n := len(r.chart.values)
	for i, l := range r.lines {
		l.StrokeColor = lerpColor(middle, end, float32(i)/float32(max(n-1, 1)))
	}
	for i, dot := range r.dots {
		dot.FillColor = lerpColor(middle, end, float32(i)/float32(max(n-1, 1)))
	}

	r.Layout(r.chart.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

// areaPixel paints the fill below the line, fading from top to bottom.
func (r *chartRenderer) areaPixel(x, y, w, h int) color.Color {
	r.mu.Lock()
	if w != r.rasterW || h != r.rasterH || r.rasterPt == nil {
		r.rasterW, r.rasterH = w, h
		r.rasterPt = ChartPoints(r.chart.values, float32(w), float32(h), chartMaxValue)
	}
	points := r.rasterPt
	r.mu.Unlock()

	if len(points) == 0 || float32(y) < LineYAt(points, float32(x)) {
		return color.Transparent
	}
	middle, _ := r.chart.accent()
	alpha := chartAreaTopA - (chartAreaTopA-chartAreaBottomA)*float32(y)/float32(h)
	middle.A = uint8(alpha)
	return middle
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *chartRenderer) Destroy() {}
