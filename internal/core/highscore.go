package core

import "sync"

// HighScoreStore persists the best distance across sessions.
// Implementations must treat missing or malformed data as 0, and
// SaveHighScore must never lower the stored value.
type HighScoreStore interface {
	LoadHighScore() (float64, error)
	SaveHighScore(distance float64) error
}

// MemoryHighScores keeps the high score in process memory.
// Used when no persistent store is attached and in tests.
type MemoryHighScores struct {
	mu    sync.Mutex
	value float64
}

// NewMemoryHighScores creates an in-memory store seeded with an initial value.
func NewMemoryHighScores(initial float64) *MemoryHighScores {
	return &MemoryHighScores{value: initial}
}

// LoadHighScore returns the stored value.
func (m *MemoryHighScores) LoadHighScore() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

// SaveHighScore keeps the larger of the stored value and distance.
func (m *MemoryHighScores) SaveHighScore(distance float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = max(m.value, distance)
	return nil
}
