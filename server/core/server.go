package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/dakitten2358/loderunner/simulation"
	"github.com/yohamta/donburi"
)

var ErrNoLevels = errors.New("server: no levels to play")

type Options struct {
	TickRate int
	// MaxTicks stops the loop after that many ticks; 0 runs until stopped.
	MaxTicks uint64
	Seed     int64
	// Autopilot lets bots play the runners.
	Autopilot bool
	// MaxAttempts skips a level after that many deaths; 0 retries forever.
	MaxAttempts int
}

// Stats counts what happened since the server started.
type Stats struct {
	Ticks     uint64
	Attempts  int
	Deaths    int
	Completed int
	Skipped   int
}

type transition int

const (
	stay transition = iota
	restart
	advance
)

// Server plays a list of levels headlessly: a killed runner restarts the
// level and a completed level moves on to the next one, wrapping around.
type Server struct {
	levels []*leveldata.Document
	opts   Options
	loop   *GameLoop

	done     chan struct{}
	doneOnce sync.Once

	mu       sync.RWMutex
	sim      *simulation.Simulation
	index    int
	attempts int
	pending  transition
	stats    Stats
}

// NewServer spawns the first level. The loop is not started.
func NewServer(levels []*leveldata.Document, opts Options) (*Server, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("server: tick rate must be positive, got %d", opts.TickRate)
	}

	s := &Server{
		levels: levels,
		opts:   opts,
		done:   make(chan struct{}),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	if err := s.load(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs the game loop on its own goroutine.
func (s *Server) Start() {
	go s.loop.Run()
}

// Stop ends the loop and releases Done.
func (s *Server) Stop() {
	s.loop.Stop()
	s.finish()
}

// Done is closed once the loop stops or the tick budget is spent.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) finish() {
	s.doneOnce.Do(func() {
		st := s.Stats()
		log.Printf("[server] finished after %d ticks: %d attempts, %d deaths, %d completed, %d skipped",
			st.Ticks, st.Attempts, st.Deaths, st.Completed, st.Skipped)
		close(s.done)
	})
}

// Tick advances the current level by one fixed step and applies any level
// transition its events asked for. It reports false once MaxTicks is reached.
func (s *Server) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.Step(1 / float64(s.opts.TickRate))
	s.stats.Ticks++

	switch s.pending {
	case restart:
		next := s.index
		if s.opts.MaxAttempts > 0 && s.attempts >= s.opts.MaxAttempts {
			log.Printf("[server] giving up on %q after %d attempts", s.levels[s.index].Name, s.attempts)
			s.stats.Skipped++
			next = s.index + 1
		}
		s.loadFrom(next)
	case advance:
		s.stats.Completed++
		s.loadFrom(s.index + 1)
	}

	return s.opts.MaxTicks == 0 || s.stats.Ticks < s.opts.MaxTicks
}

// RunTicks steps n times without waiting on the ticker.
func (s *Server) RunTicks(n int) {
	for i := 0; i < n; i++ {
		if !s.Tick() {
			return
		}
	}
}

// loadFrom loads the first level from index on that spawns, wrapping around.
func (s *Server) loadFrom(index int) {
	for i := 0; i < len(s.levels); i++ {
		next := (index + i) % len(s.levels)
		if err := s.load(next); err != nil {
			log.Printf("[server] warning: %v", err)
			continue
		}
		return
	}
	log.Printf("[server] warning: no level could be loaded, keeping %q", s.levels[s.index].Name)
	s.pending = stay
}

func (s *Server) load(index int) error {
	doc := s.levels[index]
	sim, err := simulation.New(doc, simulation.Options{
		Seed:      s.opts.Seed,
		Autopilot: s.opts.Autopilot,
	})
	if err != nil {
		return fmt.Errorf("level %q: %w", doc.Name, err)
	}

	if index != s.index || s.sim == nil {
		s.attempts = 0
		log.Printf("[server] playing %q (%d/%d)", doc.Name, index+1, len(s.levels))
	}
	s.index = index
	s.attempts++
	s.stats.Attempts++
	s.pending = stay
	s.sim = sim

	sim.OnRunnerKilled(func(ev components.RunnerKilled) {
		s.stats.Deaths++
		if ev.By == donburi.Null {
			log.Printf("[server] runner %v buried at %v", ev.Runner, ev.Cell)
		} else {
			log.Printf("[server] runner %v caught at %v", ev.Runner, ev.Cell)
		}
		if s.pending == stay {
			s.pending = restart
		}
	})
	sim.OnTreasureCollected(func(ev components.TreasureCollected) {
		log.Printf("[server] treasure at %v collected, %d left", ev.Cell, ev.Remaining)
	})
	sim.OnExitRevealed(func(components.ExitRevealed) {
		log.Printf("[server] exit revealed on %q", doc.Name)
	})
	sim.OnLevelComplete(func(ev components.LevelComplete) {
		log.Printf("[server] %q complete at tick %d", doc.Name, ev.Tick)
		s.pending = advance
	})
	return nil
}

// Stats returns a snapshot of the counters.
func (s *Server) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Level returns the index and name of the level being played.
func (s *Server) Level() (int, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index, s.levels[s.index].Name
}
