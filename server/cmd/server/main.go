package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dakitten2358/loderunner/assets"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/server/core"
)

func main() {
	assetsDir := flag.String("assets", "", "Directory holding the levels/ folder (empty = embedded levels)")
	playlist := flag.String("playlist", "", "Playlist file inside the assets directory (empty = every level, by name)")
	configPath := flag.String("config", "", "YAML file overriding the tuning defaults")
	tickRate := flag.Int("tickrate", 0, "Simulation ticks per second (0 = config value)")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	fast := flag.Bool("fast", false, "Step as fast as possible instead of in real time (requires -ticks)")
	autopilot := flag.Bool("autopilot", true, "Let bots play the runners")
	maxAttempts := flag.Int("attempts", 3, "Skip a level after this many deaths (0 = never)")
	seed := flag.Int64("seed", 0, "Guard respawn seed (0 = config value)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *tickRate <= 0 {
		*tickRate = cfg.Simulation.TickRate
	}
	if *seed == 0 {
		*seed = cfg.Simulation.Seed
	}

	levels, err := core.LoadLevels(assets.FS(*assetsDir), assets.LevelsDir, *playlist)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	server, err := core.NewServer(levels, core.Options{
		TickRate:    *tickRate,
		MaxTicks:    *maxTicks,
		Seed:        *seed,
		Autopilot:   *autopilot,
		MaxAttempts: *maxAttempts,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if *fast {
		if *maxTicks == 0 {
			log.Fatal("-fast needs a -ticks budget")
		}
		server.RunTicks(int(*maxTicks))
		server.Stop()
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting headless run of %d levels (tick rate: %d/s, autopilot: %v)", len(levels), *tickRate, *autopilot)
	server.Start()

	select {
	case <-sigChan:
		log.Println("Shutting down...")
		server.Stop()
	case <-server.Done():
	}
}
