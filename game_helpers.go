package main

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/textio"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

const (
	stopGameOver   = "game over"
	stopMaxGens    = "maximum generations reached"
	stopStagnation = "stagnation detected"
	stopInterrupt  = "interrupted"
)

// initializeGame loads the initial grid and sets up the engine
func initializeGame(config utils.Config, logger *zap.Logger) (*game.Engine, error) {
	grid, err := textio.LoadFile(config.InputFile)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to load initial generation")
	}

	workers := config.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithWorkers(workers),
	}
	if config.UseMemoryPool {
		opts = append(opts, game.WithGridPool(model.NewGridPool()))
	}

	engine, err := game.NewEngine(grid, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	logger.Info("game initialized",
		zap.String("input_file", config.InputFile),
		zap.Int("rows", grid.GetRows()),
		zap.Int("cols", grid.GetCols()),
		zap.Int("workers", workers),
		zap.Bool("memory_pool", config.UseMemoryPool),
		zap.Int("player1_cells", grid.CountOf(model.Player1)),
		zap.Int("player2_cells", grid.CountOf(model.Player2)),
	)
	return engine, nil
}

// displayFrame clears the screen if configured and renders the snapshot
func displayFrame(renderer *textio.TerminalRenderer, snap game.Snapshot, config utils.Config, logger *zap.Logger) {
	if config.ClearScreen {
		if err := renderer.Clear(); err != nil {
			logger.Warn("clearing terminal", zap.Error(err))
		}
	}
	if err := renderer.Display(snap); err != nil {
		logger.Error("rendering generation", zap.Int("generation", snap.Generation), zap.Error(err))
	}
}

// updateGameState feeds the latest snapshot and its step time into the stats
// and returns the new stagnation count
func updateGameState(
	engine *game.Engine,
	snap game.Snapshot,
	stepDuration time.Duration,
	stagnantCount int,
	stats *utils.Stats,
) int {
	stats.Update(snap.Generation, snap.Player1Count, snap.Player2Count, stepDuration)

	if engine.IsStagnant() {
		return stagnantCount + 1
	}
	return 0
}

// checkStopConditions determines if the run should end before the next step
func checkStopConditions(snap game.Snapshot, stagnantCount int, config utils.Config) (bool, string) {
	if snap.Terminal {
		return true, stopGameOver
	}
	if config.MaxGenerations > 0 && snap.Generation >= config.MaxGenerations {
		return true, stopMaxGens
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, stopStagnation
	}
	return false, ""
}

// logFinalStats reports the run summary
func logFinalStats(logger *zap.Logger, reason string, snap game.Snapshot, stats *utils.Stats) {
	logger.Info("run finished",
		zap.String("reason", reason),
		zap.Int("generation", snap.Generation),
		zap.Int("player1_cells", snap.Player1Count),
		zap.Int("player2_cells", snap.Player2Count),
		zap.String("outcome", snap.Message),
		zap.Duration("elapsed", stats.Elapsed()),
		zap.Float64("generations_per_second", stats.GenerationsPerSecond),
		zap.Float64("avg_player1_cells", stats.AveragePlayer1),
		zap.Float64("avg_player2_cells", stats.AveragePlayer2),
	)
}
