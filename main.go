package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/textio"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

const defaultConfigFile = "config.json"

// loadConfig reads the config file, falling back to defaults when the default file is absent,
// then applies any flags that were set explicitly
func loadConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("go-gol-duel", flag.ContinueOnError)
	var (
		configFile = fs.String("config", defaultConfigFile, "path to JSON config file")
		input      = fs.String("input", "", "initial generation file")
		maxGens    = fs.Int("max-gens", 0, "stop after this many generations (0 = unlimited)")
		workers    = fs.Int("workers", 0, "goroutines per step (0 = one per CPU)")
		frameRate  = fs.Duration("frame-rate", 0, "delay between generations")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
		clearScrn  = fs.Bool("clear", false, "clear the terminal between generations")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, err
	}
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		if *configFile != defaultConfigFile || !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			config.InputFile = *input
		case "max-gens":
			config.MaxGenerations = *maxGens
		case "workers":
			config.Workers = *workers
		case "frame-rate":
			config.FrameRate = *frameRate
		case "log-level":
			config.LogLevel = *logLevel
		case "clear":
			config.ClearScreen = *clearScrn
		}
	})
	if fs.NArg() > 0 && *input == "" {
		config.InputFile = fs.Arg(0)
	}

	return config, config.Validate()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run plays one game and returns the process exit code
func run(args []string) int {
	config, err := loadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	baseLogger, err := utils.NewLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 2
	}
	defer baseLogger.Sync()

	runID := uuid.New().String()
	logger := baseLogger.With(zap.String("run_id", runID))

	engine, err := initializeGame(config, logger)
	if err != nil {
		logger.Error("failed to start game", zap.Error(err))
		return 1
	}

	renderer := textio.NewTerminalRenderer()
	stats := utils.NewStats(runID)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		snap          = engine.Snapshot()
		stagnantCount = 0
		reason        string
	)
	displayFrame(renderer, snap, config, logger)

	for {
		select {
		case <-sigChan:
			reason = stopInterrupt
		default:
		}
		if reason != "" {
			break
		}

		var stop bool
		if stop, reason = checkStopConditions(snap, stagnantCount, config); stop {
			break
		}

		if config.FrameRate > 0 {
			time.Sleep(config.FrameRate)
		}

		stepStart := time.Now()
		if !engine.Step() {
			reason = stopGameOver
			break
		}
		stepDuration := time.Since(stepStart)

		snap = engine.Snapshot()
		displayFrame(renderer, snap, config, logger)
		stagnantCount = updateGameState(engine, snap, stepDuration, stagnantCount, stats)
	}

	logFinalStats(logger, reason, snap, stats)
	return 0
}
