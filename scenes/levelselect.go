package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/systems"
	"github.com/dakitten2358/loderunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelSelectScene lists the loaded levels.
type LevelSelectScene struct {
	sceneChanger SceneChanger
	session      *Session
	ui           *ui.LevelSelectUI
	once         sync.Once
}

func NewLevelSelectScene(sc SceneChanger, session *Session) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, session: session}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)
	if ls.session.PollChanges() {
		ls.configure()
		ls.ui.SetStatus("levels reloaded")
	}
	ls.ui.Update()
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ui == nil {
		return
	}
	ls.ui.UI.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	prefs := ls.session.Prefs
	ls.ui = ui.NewLevelSelectUI(ls.session.LevelNames(), prefs.LevelIndex)

	ls.ui.OnPlay = func(index int) {
		prefs.LevelIndex = index
		_ = systems.SavePrefs(prefs)
		ls.sceneChanger.ChangeScene(NewGameplayScene(ls.sceneChanger, ls.session, index))
	}
	ls.ui.OnToggleAutopilot = func() bool {
		prefs.Autopilot = !prefs.Autopilot
		_ = systems.SavePrefs(prefs)
		return prefs.Autopilot
	}
	ls.ui.OnTogglePaths = func() bool {
		prefs.ShowPaths = !prefs.ShowPaths
		cfg.Viewer.ShowPaths = prefs.ShowPaths
		_ = systems.SavePrefs(prefs)
		return prefs.ShowPaths
	}
	ls.ui.OnQuit = func() {
		ls.session.Close()
		os.Exit(0)
	}
}
