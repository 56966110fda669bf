package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// HighScores adapts a Store to core.HighScoreStore for one game.
// Write failures are logged here so callers may ignore them.
type HighScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

var _ core.HighScoreStore = (*HighScores)(nil)

// HighScores returns the high score view of gameID.
// A nil logger falls back to the default logger.
func (s *Store) HighScores(gameID string, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScores{store: s, gameID: gameID, logger: logger}
}

// LoadHighScore implements core.HighScoreStore.
func (h *HighScores) LoadHighScore() (float64, error) {
	v, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.logger.Warn("cannot load high score", "game", h.gameID, "err", err)
	}
	return v, err
}

// SaveHighScore implements core.HighScoreStore.
func (h *HighScores) SaveHighScore(distance float64) error {
	err := h.store.SaveHighScore(h.gameID, distance)
	if err != nil {
		h.logger.Error("cannot save high score", "game", h.gameID, "distance", distance, "err", err)
	}
	return err
}
