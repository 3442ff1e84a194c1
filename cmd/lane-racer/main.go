package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/lane-racer/audio"
	"github.com/lixenwraith/lane-racer/config"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/score"
)

var (
	configFlag    = flag.String("config", "", "Path to TOML config file (default: user config dir)")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/lane-racer.log")
	seedFlag      = flag.Uint64("seed", 0, "Enemy placement seed, 0 picks a random one")
	collisionFlag = flag.String("collision", "", "Collision test: bounds or parts")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
	noAudioFlag   = flag.Bool("no-audio", false, "Do not open the audio device")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run executes the game and returns the process exit code
// Every deferred cleanup has run by the time it returns
func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("startup: stdout is not a terminal")
		fmt.Fprintln(os.Stderr, "lane-racer: stdout is not a terminal")
		return 1
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lane-racer: %v\n", err)
		return 2
	}

	engineCfg, err := cfg.EngineOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lane-racer: %v\n", err)
		return 2
	}

	scorePath, err := cfg.ScorePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lane-racer: score file: %v\n", err)
		return 2
	}
	keeper := score.NewKeeper(score.NewFileStore(scorePath))

	sound := audio.NewSoundManager(audioConfig(cfg))
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.SetMuted(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen.Fini)

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	a, err := newApp(screen, engineCfg, keeper, sound, engine.NewMonotonicTimeProvider())
	if err != nil {
		core.SetCrashScreen(nil)
		screen.Fini()
		fmt.Fprintf(os.Stderr, "lane-racer: %v\n", err)
		return 2
	}

	runErr := a.run()
	core.SetCrashScreen(nil)
	screen.Fini()

	if runErr != nil {
		log.Printf("game: %v", runErr)
		fmt.Fprintf(os.Stderr, "lane-racer: %v\n", runErr)
		return 1
	}
	if best, ok := keeper.HighScore(); ok {
		fmt.Printf("High score: %d\n", best)
	}
	return 0
}

// loadConfig layers file and environment settings under the command-line flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "collision":
			cfg.Game.Collision = *collisionFlag
		case "no-audio":
			cfg.Audio.Enabled = !*noAudioFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func audioConfig(cfg *config.Config) *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}
