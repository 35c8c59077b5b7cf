package views

import (
	"image/color"

	"morandi-studio/internal/theme"
	"morandi-studio/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var featureCards = []struct {
	icon, title, description string
}{
	{"☁️", "Cloud Storage", "Secure cloud data storage"},
	{"🧠", "Smart Analytics", "AI-driven data analysis"},
	{"🔄", "Live Sync", "Real-time sync across devices"},
	{"🛡️", "Protection", "Enterprise-grade security"},
}

// GlassView is the liquid glass shell window content.
type GlassView struct {
	app       fyne.App
	window    fyne.Window
	fyneTheme *theme.GlassFyneTheme
	text      theme.GlassText
	content   *fyne.Container

	background *canvas.LinearGradient
	header     *components.Header
	themeBtn   *components.PillButton
	badge      *components.Badge
	banner     *canvas.Rectangle
	decoTiles  []*canvas.Rectangle
	cards      []*components.GlassCard
	chartPanel *canvas.Rectangle
	chart      *components.Chart
	primaryBtn *components.PillButton
	clock      *canvas.Text

	themeHandler func()
	closeHandler func()
}

// NewGlassView builds the view and sets it as the window content. The Fyne
// theme is switched through fyneTheme on every ApplyTheme; text colours stay
// fixed.
func NewGlassView(app fyne.App, window fyne.Window, fyneTheme *theme.GlassFyneTheme, text theme.GlassText, animationSize float32) *GlassView {
	gv := &GlassView{app: app, window: window, fyneTheme: fyneTheme, text: text}

	gv.initializeComponents(animationSize)
	gv.buildLayout()
	gv.setupEventHandlers()

	return gv
}

func (gv *GlassView) initializeComponents(animationSize float32) {
	t := gv.fyneTheme.Current()

	gv.background = canvas.NewLinearGradient(t.BackgroundStart.NRGBA(), t.BackgroundEnd.NRGBA(), 135)

	gv.themeBtn = components.NewPillButton(t.Icon, components.ButtonStyle{
		Fill: t.PrimaryAccent.NRGBA(), Text: gv.text.Title.NRGBA(), Radius: 18, TextSize: 18, Height: 36,
	}, func() { call(gv.themeHandler) })
	closeBtn := components.NewPillButton("×", components.ButtonStyle{
		Fill: gv.text.Neutral.NRGBA(), Hover: gv.text.NeutralHover.NRGBA(), Text: gv.text.NeutralText.NRGBA(), Radius: 18, TextSize: 18, Height: 36,
	}, func() { gv.close() })
	gv.badge = components.NewBadge(t.AccentMiddle.NRGBA(), gv.text.OnAccent.NRGBA())

	gv.header = components.NewHeader("Liquid Glass Design", "A modern liquid glass interface", components.HeaderStyle{
		Background:    t.PrimaryLight.NRGBA(),
		Title:         gv.text.Title.NRGBA(),
		Subtitle:      gv.text.Muted.NRGBA(),
		Glyph:         "✨",
		AnimationSize: animationSize,
	}, gv.badge.GetContainer(), gv.themeBtn, closeBtn)

	gv.banner = roundedPanel(t.AccentMiddle.NRGBA(), 20)
	for range 3 {
		gv.decoTiles = append(gv.decoTiles, roundedPanel(t.AccentStart.NRGBA(), 15))
	}

	for i, fc := range featureCards {
		gv.cards = append(gv.cards, components.NewGlassCard(fc.icon, fc.title, fc.description, gv.cardStyle(t, i)))
	}

	gv.chartPanel = roundedPanel(t.CardBackground.NRGBA(), 20)
	gv.chart = components.NewChart(components.ChartValues, t.AccentMiddle.NRGBA(), t.AccentEnd.NRGBA())

	gv.primaryBtn = components.NewPillButton("🚀 Get started", components.ButtonStyle{
		Fill: t.AccentMiddle.NRGBA(), Hover: t.AccentEnd.NRGBA(), Text: gv.text.OnAccent.NRGBA(), Radius: 21, Bold: true, Height: 42,
	}, nil)
	gv.clock = plainText("", gv.text.Faint.NRGBA(), 11)
	gv.clock.Alignment = fyne.TextAlignTrailing
}

func (gv *GlassView) cardStyle(t theme.GlassTheme, i int) components.CardStyle {
	var iconBg color.Color = t.PrimaryAccent.NRGBA()
	if len(t.IconBg) > 0 {
		iconBg = t.IconBg[i%len(t.IconBg)].NRGBA()
	}
	return components.CardStyle{
		Fill:        gv.text.OnAccent.NRGBA(),
		Hover:       t.PrimaryMedium.NRGBA(),
		Border:      t.CardBorder.NRGBA(),
		IconBg:      iconBg,
		Title:       gv.text.Title.NRGBA(),
		Description: gv.text.Muted.NRGBA(),
	}
}

func (gv *GlassView) buildLayout() {
	deco := container.NewHBox()
	for i, icon := range []string{"🌟", "💎", "🔮"} {
		tile := gv.decoTiles[i]
		tile.SetMinSize(fyne.NewSize(50, 50))
		glyph := canvas.NewText(icon, gv.text.OnAccent.NRGBA())
		glyph.TextSize = 28
		deco.Add(container.NewStack(tile, container.NewCenter(glyph)))
	}
	welcome := sectionTitle("✨ Welcome to Liquid Glass Design", gv.text.OnAccent.NRGBA(), 22)
	welcomeSub := plainText("Explore a translucent modern UI with fluid visuals", theme.WithAlpha(gv.text.OnAccent.NRGBA(), 0xd0), 14)
	banner := container.NewStack(gv.banner, container.NewPadded(container.NewBorder(nil, nil,
		container.NewCenter(container.NewVBox(welcome, welcomeSub)),
		container.NewCenter(deco),
	)))

	cards := container.NewGridWithColumns(len(gv.cards))
	for _, c := range gv.cards {
		cards.Add(c)
	}

	chart := container.NewStack(gv.chartPanel, container.NewPadded(container.NewBorder(
		sectionTitle("📈 Activity", gv.text.Title.NRGBA(), 15), nil, nil, nil, gv.chart,
	)))

	status := container.NewVBox(
		plainText("● All systems operational", gv.text.OK.NRGBA(), 13),
		plainText("Version 1.0.0 | Liquid Glass UI Framework", gv.text.Faint.NRGBA(), 12),
	)
	neutral := components.ButtonStyle{
		Fill:   gv.text.Neutral.NRGBA(),
		Hover:  gv.text.NeutralHover.NRGBA(),
		Text:   gv.text.NeutralText.NRGBA(),
		Radius: 21,
		Bold:   true,
		Height: 42,
	}
	actions := container.NewBorder(nil, nil, status, container.NewHBox(
		components.NewPillButton("📖 Docs", neutral, nil),
		components.NewPillButton("⚙️ Settings", neutral, nil),
		gv.primaryBtn,
	))

	footer := container.NewBorder(nil, nil,
		plainText("© 2024 Liquid Glass UI • Designed with ❤️", gv.text.Faint.NRGBA(), 11),
		gv.clock,
	)

	body := container.NewVScroll(container.NewVBox(banner, cards, chart, actions))

	gv.content = container.NewStack(
		gv.background,
		container.NewPadded(container.NewBorder(gv.header.GetContainer(), footer, nil, nil, body)),
	)
	gv.window.SetContent(gv.content)
}

// setupEventHandlers connects window level events
func (gv *GlassView) setupEventHandlers() {
	gv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			gv.close()
		}
	})
}

func (gv *GlassView) close() {
	if gv.closeHandler != nil {
		gv.closeHandler()
		return
	}
	gv.window.Close()
}

func (gv *GlassView) SetThemeHandler(handler func()) { gv.themeHandler = handler }

// SetCloseHandler replaces the default close behaviour of the × button and
// the Escape key.
func (gv *GlassView) SetCloseHandler(handler func()) { gv.closeHandler = handler }

// ApplyTheme switches the Fyne theme and recolours the custom drawn parts.
func (gv *GlassView) ApplyTheme(t theme.GlassTheme) {
	gv.fyneTheme.Set(t)
	if gv.app != nil {
		gv.app.Settings().SetTheme(gv.fyneTheme)
	}

	gv.background.StartColor = t.BackgroundStart.NRGBA()
	gv.background.EndColor = t.BackgroundEnd.NRGBA()
	gv.background.Refresh()

	gv.header.SetColors(t.PrimaryLight.NRGBA(), gv.text.Title.NRGBA(), gv.text.Muted.NRGBA())
	gv.themeBtn.SetText(t.Icon)
	gv.themeBtn.SetStyle(components.ButtonStyle{Fill: t.PrimaryAccent.NRGBA(), Hover: t.AccentStart.NRGBA(), Text: gv.text.Title.NRGBA()})

	gv.banner.FillColor = t.AccentMiddle.NRGBA()
	gv.banner.Refresh()
	for _, tile := range gv.decoTiles {
		tile.FillColor = t.AccentStart.NRGBA()
		tile.Refresh()
	}
	for i, c := range gv.cards {
		c.SetStyle(gv.cardStyle(t, i))
	}

	gv.chartPanel.FillColor = t.CardBackground.NRGBA()
	gv.chartPanel.Refresh()
	gv.chart.SetAccent(t.AccentMiddle.NRGBA(), t.AccentEnd.NRGBA())

	gv.primaryBtn.SetStyle(components.ButtonStyle{Fill: t.AccentMiddle.NRGBA(), Hover: t.AccentEnd.NRGBA(), Text: gv.text.OnAccent.NRGBA(), Bold: true})
}

// ShowBadge flashes the theme name on the theme's accent colour.
func (gv *GlassView) ShowBadge(label string, t theme.GlassTheme) {
	gv.badge.Show(label, t.AccentMiddle.NRGBA())
}

func (gv *GlassView) HideBadge() { gv.badge.Hide() }

func (gv *GlassView) SetClock(text string) {
	gv.clock.Text = text
	gv.clock.Refresh()
}

// Header exposes the header so the GIF player can render into it.
func (gv *GlassView) Header() *components.Header {
	return gv.header
}

// GetContainer returns the main container
func (gv *GlassView) GetContainer() *fyne.Container {
	return gv.content
}
