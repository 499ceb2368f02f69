package tui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/storage"
)

// sessionTracker follows the session that is being played and persists
// its result. Storage errors are logged and otherwise ignored.
type sessionTracker struct {
	store  *storage.Store
	logger *log.Logger
	remote bool

	active  bool
	id      string
	level   config.Level
	started time.Time
	ticks   uint64
}

func (t *sessionTracker) begin(level config.Level) {
	t.active = true
	t.id = uuid.NewString()
	t.level = level
	t.started = time.Now()
	t.ticks = 0
	t.logger.Debug("tracking session", "session", t.id, "level", level)
}

func (t *sessionTracker) tick() {
	if t.active {
		t.ticks++
	}
}

// finish records the session. Scores are only kept for sessions that
// ended in a game over.
func (t *sessionTracker) finish(scores int, reason string) {
	if !t.active {
		return
	}
	t.active = false

	if t.store == nil {
		return
	}

	if reason == storage.EndGameOver && scores > 0 {
		if _, err := t.store.SaveScore(storage.GameID(t.level), scores); err != nil {
			t.logger.Warn("could not save score", "level", t.level, "scores", scores, "error", err)
		}
	}

	_, err := t.store.SaveSession(storage.SessionResult{
		SessionID: t.id,
		Level:     t.level,
		Score:     scores,
		Ticks:     t.ticks,
		EndReason: reason,
		Duration:  int(time.Since(t.started).Seconds()),
		Remote:    t.remote,
	})
	if err != nil {
		t.logger.Warn("could not save session", "session", t.id, "error", err)
	}
}
