package systems

import (
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/fonts"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and single-step requests.
// This system should run AFTER UpdateInput.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	pause.Step = pause.IsPaused && GetAction(input, cfg.ActionStep).JustPressed

	// held keys would otherwise pile up in the intents until resume
	if pause.IsPaused && !pause.Step {
		tags.LocalPlayer.Each(ecs.World, func(e *donburi.Entry) {
			if e.HasComponent(components.Intent) {
				components.Intent.SetValue(e, components.IntentData{})
			}
		})
	}
}

// ShouldAdvance reports whether the simulation steps this frame.
func ShouldAdvance(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	return !pause.IsPaused || pause.Step
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Viewer.OverlayColor, false)

	face := text.NewGoXFace(fonts.Title.Get())
	const label = "PAUSED"
	w, h := text.Measure(label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(width)-w)/2, (float64(height)-h)/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, label, face, op)

	hint := text.NewGoXFace(fonts.Small.Get())
	const keys = "P: resume   .: step   R: reload   F1: paths   Backspace: levels"
	hw, _ := text.Measure(keys, hint, 0)
	op = &text.DrawOptions{}
	op.GeoM.Translate((float64(width)-hw)/2, float64(height)-20)
	op.ColorScale.ScaleWithColor(cfg.Gray)
	text.Draw(screen, keys, hint, op)
}

// GetOrCreatePause returns the singleton Pause component
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
