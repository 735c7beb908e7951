package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/rain/audio"
	"github.com/lixenwraith/rain/config"
	"github.com/lixenwraith/rain/engine"
	"github.com/lixenwraith/rain/terminal"
	"github.com/lixenwraith/rain/vmath"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "rain: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rain: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) (err error) {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	log.Printf("rain: seed=%d fps=%d color=%s mode=%s bench=%v", seed, cfg.FPS, cfg.RGB(), cfg.Mode(), cfg.Bench)

	screen, err := terminal.NewScreen(cfg.Mode())
	if err != nil {
		return err
	}

	// Panic Recovery: restore the terminal before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Stop()
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAIN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := engine.DefaultOptions()
	opts.Color = cfg.RGB()
	opts.FrameBudget = cfg.FrameBudget()
	opts.PollInterval = cfg.PollInterval
	opts.MaxFrames = cfg.Frames

	if cfg.Sound {
		sm := audio.NewSoundManager(seed)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: unavailable, continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	loop := engine.NewLoop(screen, vmath.NewFastRand(seed), opts)
	started := time.Now()
	if err := loop.Run(ctx); err != nil {
		return err
	}

	if cfg.Bench {
		w, h := loop.Size()
		fmt.Println(benchReport(loop.Timer().Ticks(), time.Since(started), w, h))
	}
	return nil
}

// benchReport formats the throughput line printed after a bench run
func benchReport(frames uint64, took time.Duration, w, h int) string {
	fps := 0.0
	if took > 0 {
		fps = float64(frames) / took.Seconds()
	}
	return fmt.Sprintf("%d frames in %v. %.1ffps at %dx%d", frames, took.Round(time.Microsecond), fps, w, h)
}
