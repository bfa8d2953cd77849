package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/lixenwraith/hollow/audio"
	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/game"
	"github.com/lixenwraith/hollow/input"
	"github.com/lixenwraith/hollow/level"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/render"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/hollow.log and check cell invariants every tick")
	configFlag  = flag.String("config", "", "TOML configuration file")
	roomsFlag   = flag.String("rooms", "", "Directory of room TOML files, replaces the embedded dungeon")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	seedFlag    = flag.Int64("seed", 0, "Pursuit random seed, 0 keeps the configured seed")
)

func main() {
	os.Exit(realMain())
}

// realMain owns every deferred cleanup so they run before the process exits
func realMain() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hollow: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}
	if *roomsFlag != "" {
		cfg.Dungeon.RoomsDir = *roomsFlag
	}
	if *seedFlag != 0 {
		cfg.Dungeon.Seed = *seedFlag
	}
	// Zero means unseeded: every launch gets its own pursuit sequence
	if cfg.Dungeon.Seed == 0 {
		cfg.Dungeon.Seed = time.Now().UnixNano()
	}
	log.Printf("[main] seed %d", cfg.Dungeon.Seed)
	return cfg, nil
}

func openSource(dir string) (level.Source, error) {
	if dir != "" {
		return level.NewDirSource(dir)
	}
	return level.Embedded()
}

func run() (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := openSource(cfg.Dungeon.RoomsDir)
	if err != nil {
		return err
	}
	g, err := game.New(cfg, src)
	if err != nil {
		return err
	}
	g.CheckInvariants = *debugFlag

	var sink audio.Sink
	if cfg.Audio.Enabled {
		if spk, err := audio.OpenSpeaker(); err == nil {
			sink = spk
			defer spk.Close()
		} else {
			log.Printf("[audio] %v, continuing without sound", err)
		}
	}
	cues := audio.NewCues(cfg.Audio, sink)
	if *muteFlag && !cues.Muted() {
		cues.ToggleMute()
	}
	g.Register(cues)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Restore the terminal before the stack trace reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nHOLLOW CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			err = fmt.Errorf("crashed: %v", r)
		}
	}()

	renderer := render.NewTerminalRenderer(screen)
	collector := input.NewCollector(nil)
	collector.CellAt = func(x, y int) (core.Point, bool) {
		return renderer.CellAt(g.World, x, y)
	}

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	renderer.RenderFrame(g.World, statusOf(g, cues.Muted()))
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			switch collector.Handle(ev) {
			case input.KeyQuit:
				log.Printf("[main] quit")
				return nil
			case input.KeyMute:
				cues.ToggleMute()
			case input.KeyRestart:
				// A held direction must not carry into the fresh game
				collector.Release()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			g.Tick(dt, collector.Snapshot())
			renderer.RenderFrame(g.World, statusOf(g, cues.Muted()))
		}
	}
}
