package components

import (
	"image/color"
	"testing"

	"morandi-studio/internal/processing/tone"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartPoints(t *testing.T) {
	points := ChartPoints(ChartValues, 440, 160, 100)

	require.Len(t, points, 12)
	assert.Equal(t, float32(0), points[0].X)
	assert.InDelta(t, 112, points[0].Y, 1e-4)
	assert.InDelta(t, 40, points[1].X, 1e-4)
	assert.InDelta(t, 440, points[11].X, 1e-4)
	assert.InDelta(t, 160-0.88*160, points[11].Y, 1e-4)
}

func TestChartPoints_Degenerate(t *testing.T) {
	assert.Nil(t, ChartPoints(nil, 100, 100, 100))
	assert.Nil(t, ChartPoints([]float64{1}, 100, 100, 0))

	single := ChartPoints([]float64{50}, 100, 100, 100)
	require.Len(t, single, 1)
	assert.InDelta(t, 50, single[0].Y, 1e-4)
}

func TestLineYAt(t *testing.T) {
	points := []fyne.Position{{X: 0, Y: 100}, {X: 10, Y: 0}, {X: 20, Y: 50}}

	assert.Equal(t, float32(100), LineYAt(points, -5))
	assert.InDelta(t, 50, LineYAt(points, 5), 1e-4)
	assert.InDelta(t, 25, LineYAt(points, 15), 1e-4)
	assert.Equal(t, float32(50), LineYAt(points, 30))
	assert.Equal(t, float32(0), LineYAt(nil, 3))
}

func TestLerpColor(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 100, G: 100, B: 0, A: 255}

	assert.Equal(t, a, lerpColor(a, b, 0))
	assert.Equal(t, b, lerpColor(a, b, 1))
	assert.Equal(t, color.NRGBA{R: 50, G: 100, B: 100, A: 255}, lerpColor(a, b, 0.5))
}

func TestAdjustmentPanel_SetValuesIsSilent(t *testing.T) {
	test.NewApp()
	panel := NewAdjustmentPanel(color.Black)

	calls := 0
	panel.SetChangeHandler(func(tone.AdjustParams) { calls++ })
	want := tone.AdjustParams{Brightness: 1.2, Contrast: 0.8, Saturation: 1.5}
	panel.SetValues(want)

	assert.Equal(t, 0, calls)
	got := panel.Values()
	assert.InDelta(t, want.Brightness, got.Brightness, 1e-9)
	assert.InDelta(t, want.Contrast, got.Contrast, 1e-9)
	assert.InDelta(t, want.Saturation, got.Saturation, 1e-9)
}

func TestAdjustmentPanel_DragEndReportsAllValues(t *testing.T) {
	test.NewApp()
	panel := NewAdjustmentPanel(color.Black)
	panel.SetValues(tone.AdjustParams{Brightness: 1, Contrast: 0.8, Saturation: 1.5})

	var got []tone.AdjustParams
	panel.SetChangeHandler(func(p tone.AdjustParams) { got = append(got, p) })
	panel.brightness.Value = 1.2
	panel.brightness.OnChangeEnded(1.2)

	require.Len(t, got, 1)
	assert.InDelta(t, 1.2, got[0].Brightness, 1e-9)
	assert.InDelta(t, 0.8, got[0].Contrast, 1e-9)
	assert.InDelta(t, 1.5, got[0].Saturation, 1e-9)
}

func TestAdjustmentPanel_StartsAtDefaults(t *testing.T) {
	test.NewApp()
	panel := NewAdjustmentPanel(color.Black)

	got := panel.Values()
	assert.InDelta(t, 1.0, got.Brightness, 1e-9)
	assert.InDelta(t, 1.0, got.Contrast, 1e-9)
	assert.InDelta(t, 1.0, got.Saturation, 1e-9)
}

func TestInfoBar(t *testing.T) {
	test.NewApp()
	bar := NewInfoBar(color.Black)

	bar.SetInfo("📷 a.png", "3 × 2 px")

	name, size := bar.Info()
	assert.Equal(t, "📷 a.png", name)
	assert.Equal(t, "3 × 2 px", size)
}

func TestBadge(t *testing.T) {
	test.NewApp()
	b := NewBadge(color.White, color.Black)
	assert.False(t, b.Visible())

	b.Show("🌸 Smoke Pink", color.Black)
	assert.True(t, b.Visible())
	assert.Equal(t, "🌸 Smoke Pink", b.Text())

	b.Hide()
	assert.False(t, b.Visible())
}

func TestPillButton_Tapped(t *testing.T) {
	test.NewApp()
	tapped := 0
	btn := NewPillButton("Open", ButtonStyle{Fill: color.White, Text: color.Black}, func() { tapped++ })

	test.Tap(btn)

	assert.Equal(t, 1, tapped)
	assert.Equal(t, float32(40), btn.MinSize().Height)
}
