package main

import (
	"flag"
	"image"
	"log"

	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/fonts"
	"github.com/dakitten2358/loderunner/scenes"
	"github.com/dakitten2358/loderunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session, play bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if play {
		g.scene = scenes.NewGameplayScene(g, session, session.Prefs.LevelIndex)
	} else {
		g.scene = scenes.NewLevelSelectScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.Viewer.Width, cfg.Viewer.Height)
	return cfg.Viewer.Width, cfg.Viewer.Height
}

func main() {
	assetsDir := flag.String("assets", "", "assets directory holding levels/ (embedded levels when empty)")
	playlist := flag.String("playlist", "", "playlist file relative to the assets root")
	configPath := flag.String("config", "", "YAML config overlay")
	play := flag.Bool("play", false, "skip the level list and start at the last played level")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	// Initialize persistence and load saved prefs
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	prefs := systems.LoadPrefs()
	systems.ApplyPrefs(prefs)

	session, err := scenes.NewSession(*assetsDir, *playlist, *configPath, prefs)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	ebiten.SetTPS(cfg.Simulation.TickRate)
	ebiten.SetWindowTitle("Lode Runner")
	ebiten.SetWindowSize(int(float64(cfg.Viewer.Width)*cfg.Viewer.Scale), int(float64(cfg.Viewer.Height)*cfg.Viewer.Scale))

	if err := ebiten.RunGame(NewGame(session, *play)); err != nil {
		log.Fatal(err)
	}
}
