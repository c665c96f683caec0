package gameplay

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/game/state"
)

// LogListener writes level events to the log
type LogListener struct{}

// LevelBuilt logs the shape of a freshly built level
func (LogListener) LevelBuilt(e state.LevelBuiltEvent) {
	log.WithFields(log.Fields{
		"level":  e.Level,
		"grid":   fmt.Sprintf("%dx%d", e.Cols, e.Rows),
		"spikes": e.Spikes,
		"resets": e.Resets,
		"bodies": e.Bodies,
		"seed":   e.Seed,
	}).Info("Level built")
}

// LevelWon logs the completion time
func (LogListener) LevelWon(e state.LevelWonEvent) {
	log.WithFields(log.Fields{
		"level":   e.Level,
		"seconds": e.Seconds,
	}).Info("Level won")
}
