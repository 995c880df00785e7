package game

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// historySize is how many previous grid fingerprints are kept for stagnation checks
const historySize = 5

// Engine runs a two-player game from an initial grid.
// It owns the current generation and builds the next one into a separate buffer on every step.
type Engine struct {
	mu         sync.RWMutex
	current    *model.Grid
	generation int
	history    []string

	pool    *model.GridPool
	workers int
	logger  *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for step and outcome events
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWorkers sets how many goroutines compute each generation. Values below 2 step sequentially.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// WithGridPool makes the engine recycle next-generation buffers through pool
func WithGridPool(pool *model.GridPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// NewEngine creates an engine at generation 0 from a copy of initial
func NewEngine(initial *model.Grid, opts ...Option) (*Engine, error) {
	if initial == nil {
		return nil, errors.Wrap(model.ErrNilGrid, "[NewEngine] failed to create engine")
	}
	rows, cols := initial.GetRows(), initial.GetCols()
	if !model.ValidDimensions(rows, cols) {
		return nil, errors.Wrapf(model.ErrInvalidDimensions, "[NewEngine] failed to create engine for %dx%d grid", rows, cols)
	}

	e := &Engine{
		current: initial.Clone(),
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Step advances the game by one generation.
// It returns false, leaving the state untouched, once either player has no live cells.
func (e *Engine) Step() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current.IsTerminal() {
		return false
	}

	start := time.Now()
	next := e.nextBuffer()
	e.computeNext(next)

	prev := e.current
	e.history = append(e.history, prev.GetGridHash())
	if len(e.history) > historySize {
		e.history = e.history[1:]
	}
	e.current = next
	e.generation++
	model.GridToPool(prev, e.pool)

	p1, p2 := e.current.CountOf(model.Player1), e.current.CountOf(model.Player2)
	e.logger.Debug("generation computed",
		zap.Int("generation", e.generation),
		zap.Int("player1_cells", p1),
		zap.Int("player2_cells", p2),
		zap.Duration("duration", time.Since(start)),
	)
	if model.IsTerminal(p1, p2) {
		e.logger.Info("game over",
			zap.Int("generation", e.generation),
			zap.String("outcome", model.OutcomeMessage(p1, p2)),
		)
	}
	return true
}

func (e *Engine) nextBuffer() *model.Grid {
	rows, cols := e.current.GetRows(), e.current.GetCols()
	if e.pool != nil {
		return e.pool.Get(rows, cols)
	}
	next, _ := model.NewGrid(rows, cols)
	return next
}

// computeNext fills next from the current grid, splitting rows across workers
func (e *Engine) computeNext(next *model.Grid) {
	rows := e.current.GetRows()
	numWorkers := min(e.workers, rows)
	if numWorkers <= 1 {
		e.computeRows(next, 0, rows)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			e.computeRows(next, startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is the barrier before the swap
	_ = eg.Wait()
}

func (e *Engine) computeRows(next *model.Grid, startRow, endRow int) {
	g := e.current
	for x := startRow; x < endRow; x++ {
		for y := range g.GetCols() {
			n1 := g.CountNeighbors(model.Player1, x, y)
			n2 := g.CountNeighbors(model.Player2, x, y)
			next.Set(x, y, rules.ApplyTwoPlayerRules(g.Get(x, y), n1, n2))
		}
	}
}

// Generation returns the number of completed steps
func (e *Engine) Generation() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.generation
}

// CountOf returns the live cells owned by player in the current generation
func (e *Engine) CountOf(player model.Cell) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current.CountOf(player)
}

// IsTerminal reports whether the game has ended
func (e *Engine) IsTerminal() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current.IsTerminal()
}

// Outcome returns the result text for the current generation, empty while the game is running
func (e *Engine) Outcome() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return model.OutcomeMessage(e.current.CountOf(model.Player1), e.current.CountOf(model.Player2))
}

// IsStagnant reports whether the current grid repeats one of the last three generations,
// i.e. the board has settled into a still life or a short oscillator
func (e *Engine) IsStagnant() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	currentHash := e.current.GetGridHash()
	for i := len(e.history) - 1; i >= 0 && i >= len(e.history)-3; i-- {
		if e.history[i] == currentHash {
			return true
		}
	}
	return false
}
