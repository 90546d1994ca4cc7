package scenes

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/dakitten2358/loderunner/assets"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/dakitten2358/loderunner/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is the viewer state shared across scenes: where levels and config
// come from, the loaded level set and the saved prefs.
type Session struct {
	AssetsDir  string
	Playlist   string
	ConfigPath string

	Levels []*leveldata.Document
	Prefs  *systems.SavedPrefs

	watcher *assets.Watcher
}

// NewSession loads the level set. When AssetsDir is on disk, the levels (and
// the config file, if any) are watched for hot reload.
func NewSession(assetsDir, playlist, configPath string, prefs *systems.SavedPrefs) (*Session, error) {
	s := &Session{
		AssetsDir:  assetsDir,
		Playlist:   playlist,
		ConfigPath: configPath,
		Prefs:      prefs,
	}
	if s.Prefs == nil {
		s.Prefs = &systems.SavedPrefs{}
	}
	if err := s.reloadLevels(); err != nil {
		return nil, err
	}

	var dirs []string
	if assetsDir != "" {
		dirs = append(dirs, filepath.Join(assetsDir, assets.LevelsDir))
	}
	if configPath != "" {
		dirs = append(dirs, filepath.Dir(configPath))
	}
	if len(dirs) > 0 {
		w, err := assets.NewWatcher(dirs...)
		if err != nil {
			log.Printf("[session] warning: hot reload disabled: %v", err)
		} else {
			s.watcher = w
		}
	}
	return s, nil
}

// LevelNames returns the display name of every loaded level.
func (s *Session) LevelNames() []string {
	names := make([]string, len(s.Levels))
	for i, doc := range s.Levels {
		names[i] = doc.Name
	}
	return names
}

// Level returns the level at index, clamped to the loaded set.
func (s *Session) Level(index int) (*leveldata.Document, int) {
	index = max(0, min(index, len(s.Levels)-1))
	return s.Levels[index], index
}

// Reload re-reads the config file and the level set. On failure the previous
// state is kept.
func (s *Session) Reload() error {
	if s.ConfigPath != "" {
		if err := cfg.LoadFile(s.ConfigPath); err != nil {
			return err
		}
		systems.ApplyPrefs(s.Prefs)
	}
	return s.reloadLevels()
}

// PollChanges reloads when a watched file changed and reports whether it did.
func (s *Session) PollChanges() bool {
	if s.watcher == nil {
		return false
	}
	changed := s.watcher.Poll()
	if len(changed) == 0 {
		return false
	}
	log.Printf("[session] changed on disk: %v", changed)
	if err := s.Reload(); err != nil {
		log.Printf("[session] reload failed, keeping previous levels: %v", err)
		return false
	}
	return true
}

// Close stops watching for changes and stores the prefs.
func (s *Session) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	_ = systems.SavePrefs(s.Prefs)
}

func (s *Session) reloadLevels() error {
	docs, err := leveldata.LoadSet(assets.FS(s.AssetsDir), assets.LevelsDir, s.Playlist)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.Levels = docs
	log.Printf("[session] %d levels loaded", len(docs))
	return nil
}
