package devtools

import (
	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/setup"
)

// SweepFailure is a level instance that did not pass verification
type SweepFailure struct {
	Level int
	Seed  int64
	Err   error
}

// Sweep builds every level in [first, last] with each seed and verifies it.
// It returns the failures and the number of instances checked.
func Sweep(b *setup.Builder, first, last int, seeds []int64, vp level.Viewport) ([]SweepFailure, int) {
	var failures []SweepFailure
	checked := 0
	for lvl := first; lvl <= last; lvl++ {
		for _, seed := range seeds {
			checked++
			s := b.Build(lvl, seed, vp)
			if err := setup.Verify(s); err != nil {
				log.WithFields(log.Fields{
					"level": lvl,
					"seed":  seed,
				}).Warnf("Level failed verification: %v", err)
				failures = append(failures, SweepFailure{Level: lvl, Seed: seed, Err: err})
			}
		}
	}
	log.Infof("Verified %d level instances, %d failed", checked, len(failures))
	return failures, checked
}
