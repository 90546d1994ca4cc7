package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/simulation"
	"github.com/dakitten2358/loderunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type transition int

const (
	stay transition = iota
	restart
	advance
)

// GameplayScene runs one level of the simulation at the ebiten tick rate.
type GameplayScene struct {
	sceneChanger SceneChanger
	session      *Session
	index        int
	once         sync.Once

	sim *simulation.Simulation

	pending transition
	delay   float64
}

func NewGameplayScene(sc SceneChanger, session *Session, index int) *GameplayScene {
	return &GameplayScene{sceneChanger: sc, session: session, index: index}
}

func (gs *GameplayScene) Update() {
	gs.once.Do(gs.configure)

	if gs.session.PollChanges() {
		gs.load()
		if gs.sim != nil {
			systems.ShowBanner(gs.sim.ECS(), "RELOADED", cfg.White)
		}
	}
	if gs.sim == nil {
		gs.sceneChanger.ChangeScene(NewLevelSelectScene(gs.sceneChanger, gs.session))
		return
	}

	e := gs.sim.ECS()
	systems.UpdateInput(e)
	systems.UpdatePause(e)
	systems.UpdateBanner(e)
	if gs.handleActions(e) {
		return
	}

	frame := 1 / float64(ebiten.TPS())
	if gs.pending != stay {
		gs.delay -= frame
		if gs.delay <= 0 {
			gs.applyTransition()
		}
		return
	}

	if systems.ShouldAdvance(e) {
		gs.sim.Step(1 / float64(cfg.Simulation.TickRate))
	}
}

// handleActions processes the viewer shortcuts. It reports true when the
// scene was replaced or reloaded.
func (gs *GameplayScene) handleActions(e *ecs.ECS) bool {
	input := systems.Actions(e)
	prefs := gs.session.Prefs

	switch {
	case systems.GetAction(input, cfg.ActionBack).JustPressed:
		_ = systems.SavePrefs(prefs)
		gs.sceneChanger.ChangeScene(NewLevelSelectScene(gs.sceneChanger, gs.session))
		return true
	case systems.GetAction(input, cfg.ActionReload).JustPressed:
		if err := gs.session.Reload(); err != nil {
			log.Printf("[gameplay] reload failed: %v", err)
			systems.ShowBanner(e, "RELOAD FAILED", cfg.Red)
			return false
		}
		gs.load()
		return true
	case systems.GetAction(input, cfg.ActionTogglePaths).JustPressed:
		prefs.ShowPaths = !prefs.ShowPaths
		cfg.Viewer.ShowPaths = prefs.ShowPaths
		_ = systems.SavePrefs(prefs)
	}
	return false
}

func (gs *GameplayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.sim == nil {
		return
	}
	gs.sim.ECS().Draw(screen)
}

func (gs *GameplayScene) configure() {
	gs.load()
}

// load (re)starts the current level from its document.
func (gs *GameplayScene) load() {
	if len(gs.session.Levels) == 0 {
		gs.sim = nil
		return
	}
	doc, index := gs.session.Level(gs.index)
	gs.index = index
	gs.pending = stay

	prefs := gs.session.Prefs
	sim, err := simulation.New(doc, simulation.Options{
		Seed:        cfg.Simulation.Seed,
		LocalRunner: !prefs.Autopilot,
		Autopilot:   prefs.Autopilot,
	})
	if err != nil {
		log.Printf("[gameplay] cannot start %s: %v", doc.Name, err)
		gs.sim = nil
		return
	}

	e := sim.ECS()
	e.AddRenderer(cfg.LayerTiles, systems.DrawLevel)
	e.AddRenderer(cfg.LayerActors, systems.DrawActors)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawBanner)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawPause)

	sim.OnTreasureCollected(func(ev components.TreasureCollected) {
		if ev.Remaining > 0 {
			systems.ShowBanner(e, fmt.Sprintf("%d LEFT", ev.Remaining), cfg.Gold)
		}
	})
	sim.OnExitRevealed(func(components.ExitRevealed) {
		systems.ShowBanner(e, "ESCAPE!", cfg.Gold)
	})
	sim.OnRunnerKilled(func(ev components.RunnerKilled) {
		systems.ShowBanner(e, "CAUGHT", cfg.Red)
		gs.schedule(restart)
	})
	sim.OnLevelComplete(func(ev components.LevelComplete) {
		msg := "LEVEL COMPLETE"
		if prefs.RecordCompletion(doc.Name, ev.Tick) {
			msg = fmt.Sprintf("NEW BEST: %d TICKS", ev.Tick)
		}
		_ = systems.SavePrefs(prefs)
		systems.ShowBanner(e, msg, cfg.White)
		gs.schedule(advance)
	})

	gs.sim = sim
	systems.ShowBanner(e, doc.Name, cfg.White)
	log.Printf("[gameplay] level %d: %s", gs.index, doc.Name)
}

func (gs *GameplayScene) schedule(t transition) {
	if gs.pending != stay {
		return
	}
	gs.pending = t
	gs.delay = cfg.Viewer.TransitionDelay
}

func (gs *GameplayScene) applyTransition() {
	switch gs.pending {
	case restart:
		gs.load()
	case advance:
		if gs.index+1 >= len(gs.session.Levels) {
			gs.session.Prefs.LevelIndex = 0
			_ = systems.SavePrefs(gs.session.Prefs)
			gs.sceneChanger.ChangeScene(NewLevelSelectScene(gs.sceneChanger, gs.session))
			return
		}
		gs.index++
		gs.session.Prefs.LevelIndex = gs.index
		_ = systems.SavePrefs(gs.session.Prefs)
		gs.load()
	}
}
