package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/quasilyte/gdata"
)

// SavedPrefs represents the viewer state stored on disk
type SavedPrefs struct {
	LevelIndex int               `json:"levelIndex"`
	ShowPaths  bool              `json:"showPaths"`
	Autopilot  bool              `json:"autopilot"`
	BestTicks  map[string]uint64 `json:"bestTicks,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for viewer prefs
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "loderunner",
	})
	if err != nil {
		log.Printf("[persistence] warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPrefs loads prefs from disk. A missing item yields defaults.
func LoadPrefs() *SavedPrefs {
	prefs := &SavedPrefs{ShowPaths: cfg.Viewer.ShowPaths}
	if !gdataInitialized || gdataManager == nil {
		return prefs
	}

	data, err := gdataManager.LoadItem("prefs")
	if err != nil {
		log.Printf("[persistence] warning: could not load prefs: %v", err)
		return prefs
	}
	if len(data) == 0 {
		return prefs
	}

	if err := json.Unmarshal(data, prefs); err != nil {
		log.Printf("[persistence] warning: could not parse saved prefs: %v", err)
		return &SavedPrefs{ShowPaths: cfg.Viewer.ShowPaths}
	}
	return prefs
}

// SavePrefs saves prefs to disk
func SavePrefs(p *SavedPrefs) error {
	if !gdataInitialized || gdataManager == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("[persistence] warning: could not serialize prefs: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("prefs", data); err != nil {
		log.Printf("[persistence] warning: could not save prefs: %v", err)
		return err
	}
	return nil
}

// ApplyPrefs pushes saved toggles into the viewer configuration.
func ApplyPrefs(p *SavedPrefs) {
	if p == nil {
		return
	}
	cfg.Viewer.ShowPaths = p.ShowPaths
}

// RecordCompletion stores ticks as the best run for level when it beats the
// previous record. It reports whether the record changed.
func (p *SavedPrefs) RecordCompletion(level string, ticks uint64) bool {
	if p.BestTicks == nil {
		p.BestTicks = map[string]uint64{}
	}
	if best, ok := p.BestTicks[level]; ok && best <= ticks {
		return false
	}
	p.BestTicks[level] = ticks
	return true
}
