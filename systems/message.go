package systems

import (
	"image/color"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Cached font face for banner rendering (lazy initialized)
var bannerFace text.Face

// ShowBanner replaces the current banner and restarts its fade.
func ShowBanner(ecs *ecs.ECS, msg string, c color.RGBA) {
	banner := getOrCreateBanner(ecs)

	fade := gween.NewSequence()
	fade.Add(
		gween.New(0, 1, cfg.Banner.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.Hold, ease.Linear),
		gween.New(1, 0, cfg.Banner.FadeOut, ease.InQuad),
	)

	banner.Text = msg
	banner.Color = c
	banner.Fade = fade
	banner.Alpha = 0
}

// UpdateBanner advances the banner fade by one frame.
func UpdateBanner(ecs *ecs.ECS) {
	AdvanceBanner(ecs, 1/float32(ebiten.TPS()))
}

// AdvanceBanner advances the banner fade by dt seconds and hides it once the
// sequence has finished.
func AdvanceBanner(ecs *ecs.ECS, dt float32) {
	banner := getOrCreateBanner(ecs)
	if banner.Fade == nil {
		return
	}

	alpha, _, done := banner.Fade.Update(dt)
	banner.Alpha = alpha
	if done {
		banner.Fade = nil
		banner.Alpha = 0
		banner.Text = ""
	}
}

// DrawBanner renders the active banner at the top center of the screen.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := getOrCreateBanner(ecs)
	if banner.Fade == nil || banner.Alpha <= 0 {
		return
	}

	if bannerFace == nil {
		bannerFace = text.NewGoXFace(fonts.Bold.Get())
	}

	textWidth, textHeight := text.Measure(banner.Text, bannerFace, 0)
	padding := cfg.Banner.BoxPadding
	boxWidth := float32(textWidth) + padding*2
	boxHeight := float32(textHeight) + padding*2
	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := cfg.Banner.TopMargin

	box := cfg.Banner.BoxColor
	box.A = uint8(float32(box.A) * banner.Alpha)
	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, box, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(boxX+padding), float64(boxY+padding))
	op.ColorScale.ScaleWithColor(banner.Color)
	op.ColorScale.ScaleAlpha(banner.Alpha)
	text.Draw(screen, banner.Text, bannerFace, op)
}

// getOrCreateBanner returns the singleton Banner component
func getOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Banner))
	}
	return components.Banner.Get(entry)
}
