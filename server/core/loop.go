package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop calls Server.Tick at a fixed rate until stopped or until the
// server reports that its tick budget is spent.
type GameLoop struct {
	server   *Server
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	slow     int
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		interval: time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("[loop] started, %v per tick", g.interval)

	for {
		select {
		case <-g.stopChan:
			log.Printf("[loop] stopped (%d slow ticks)", g.slow)
			return
		case <-ticker.C:
			if !g.tick() {
				log.Println("[loop] tick budget spent")
				g.server.finish()
				return
			}
		}
	}
}

// Stop may be called more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() bool {
	start := time.Now()
	more := g.server.Tick()

	if elapsed := time.Since(start); elapsed > g.interval {
		g.slow++
		if g.slow == 1 || g.slow%100 == 0 {
			log.Printf("[loop] tick took %v of a %v budget (%d slow ticks)", elapsed, g.interval, g.slow)
		}
	}
	return more
}
