package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePlayer1       float64
	AveragePlayer2       float64
	TotalGenerations     int
	StartTime            time.Time
	RunID                string
}

func NewStats(runID string) *Stats {
	return &Stats{StartTime: time.Now(), RunID: runID}
}

func (s *Stats) Update(generation, player1, player2 int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	s.AveragePlayer1 = movingAverage(s.AveragePlayer1, player1)
	s.AveragePlayer2 = movingAverage(s.AveragePlayer2, player2)
}

// Elapsed returns the time since the run started
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

func movingAverage(avg float64, sample int) float64 {
	if avg == 0 {
		return float64(sample)
	}
	return (avg * 0.9) + (float64(sample) * 0.1)
}
