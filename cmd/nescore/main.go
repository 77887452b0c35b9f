// Command nescore runs the NES core against a ROM file: headless for
// automation and test ROMs, or with the ebiten/v2 audio sink attached for
// an interactive run. No video is rendered; the PPU is a structural
// stand-in only (see internal/ppu).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nescore/internal/audio"
	"nescore/internal/config"
	"nescore/internal/console"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "path to an iNES ROM file")
		configFile = flag.String("config", "", "path to the core's JSON config file")
		debug      = flag.Bool("debug", false, "enable CPU instruction tracing")
		headless   = flag.Bool("headless", false, "run a fixed number of frames and exit, without audio")
		frames     = flag.Int("frames", 120, "frames to run in headless mode")
	)
	flag.Parse()

	if *romFile == "" {
		log.Fatal("nescore: -rom is required")
	}

	configPath := *configFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("nescore: loading config: %v", err)
	}
	if *debug {
		cfg.Debug.CPUTracing = true
	}

	nes, err := console.LoadFile(*romFile)
	if err != nil {
		log.Fatalf("nescore: loading ROM: %v", err)
	}
	if cfg.Emulation.FrameSequencerFiveStep {
		nes.APU.Write(0x4017, 0x80)
	}
	if cfg.Debug.CPUTracing {
		nes.CPU.Trace = func(line string) { log.Println(line) }
	}

	if *headless {
		runHeadless(nes, *frames)
		return
	}
	runInteractive(nes)
}

// runHeadless advances the machine a fixed number of frames and reports
// what it produced, the shape CI and test-ROM automation need.
func runHeadless(nes *console.Console, frames int) {
	for i := 0; i < frames; i++ {
		nes.Frame()
	}
	samples := nes.Samples()
	fmt.Printf("ran %d frames, %d pending audio samples\n", frames, len(samples))
}

// runInteractive attaches the audio sink and runs until interrupted.
func runInteractive(nes *console.Console) {
	player, err := audio.NewPlayer(nes)
	if err != nil {
		log.Fatalf("nescore: starting audio: %v", err)
	}
	defer player.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			nes.Frame()
		}
	}
}
