package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(`{"input_file": "a.txt", "max_generations": 7, "workers": 2}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := loadConfig([]string{"-config", path, "-workers", "5", "-frame-rate", "10ms", "b.txt"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.InputFile != "b.txt" || config.MaxGenerations != 7 || config.Workers != 5 || config.FrameRate != 10*time.Millisecond {
		t.Fatalf("unexpected config %+v", config)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := loadConfig([]string{"-config", filepath.Join(t.TempDir(), "none.json")}); err == nil {
		t.Fatal("missing explicit config file must fail")
	}
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.MaxGenerations = 10
	config.StagnationThreshold = 3

	cases := []struct {
		snap      game.Snapshot
		stagnant  int
		wantStop  bool
		wantCause string
	}{
		{game.Snapshot{Terminal: true}, 0, true, stopGameOver},
		{game.Snapshot{Generation: 10}, 0, true, stopMaxGens},
		{game.Snapshot{Generation: 4}, 3, true, stopStagnation},
		{game.Snapshot{Generation: 4}, 2, false, ""},
	}
	for i, c := range cases {
		stop, reason := checkStopConditions(c.snap, c.stagnant, config)
		if stop != c.wantStop || reason != c.wantCause {
			t.Fatalf("case %d: stop=%v reason=%q", i, stop, reason)
		}
	}
}

func TestInitializeGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generation0.txt")
	if err := os.WriteFile(path, []byte("3 5\n.....\n.111.\n...2.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	config := utils.DefaultConfig()
	config.InputFile = path
	config.Workers = 2

	engine, err := initializeGame(config, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	snap := engine.Snapshot()
	if snap.Rows != 3 || snap.Cols != 5 || snap.Player1Count != 3 || snap.Player2Count != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	config.InputFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := initializeGame(config, zaptest.NewLogger(t)); err == nil {
		t.Fatal("missing input must fail")
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "generation0.txt")
	if err := os.WriteFile(input, []byte("1 3\n1.2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	configFile := filepath.Join(dir, "run.json")
	if err := os.WriteFile(configFile, []byte(`{"input_file": "`+input+`", "log_level": "error"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if code := run([]string{"-config", configFile}); code != 0 {
		t.Fatalf("finished game exit code=%d, want 0", code)
	}
	if code := run([]string{"-config", filepath.Join(dir, "none.json")}); code != 2 {
		t.Fatalf("missing config exit code=%d, want 2", code)
	}
	if code := run([]string{"-config", configFile, "-log-level", "loud"}); code != 2 {
		t.Fatalf("bad log level exit code=%d, want 2", code)
	}
	if code := run([]string{"-config", configFile, "-input", filepath.Join(dir, "missing.txt")}); code != 1 {
		t.Fatalf("missing input exit code=%d, want 1", code)
	}
}

func TestUpdateGameStateUsesStepDuration(t *testing.T) {
	grid, err := model.NewGridFromCells(1, 2, []model.Cell{model.Player1, model.Player2})
	if err != nil {
		t.Fatalf("NewGridFromCells: %v", err)
	}
	engine, err := game.NewEngine(grid)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	stats := utils.NewStats("run")
	time.Sleep(20 * time.Millisecond)
	updateGameState(engine, engine.Snapshot(), 50*time.Millisecond, 0, stats)
	if math.Abs(stats.GenerationsPerSecond-20) > 1e-9 {
		t.Fatalf("generations per second=%v, want 20 from a 50ms step", stats.GenerationsPerSecond)
	}
}
