package gameplay

import (
	"time"

	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/game/entities"
	"tiltmaze/pkg/game/physics"
	"tiltmaze/pkg/game/state"
)

// StepResult describes what happened during one simulation step
type StepResult struct {
	Phase    state.Phase // phase after the step
	Dt       float64     // integration step actually used
	Contacts int         // wall contacts resolved
	Respawns int         // balls sent back by hazards
	Won      bool        // the level was won during this step
	Advanced bool        // auto-advance moved to the next level
}

// Step advances the simulation by one frame. delta is the frame time in
// seconds, tilt the current tilt vector and now the frame timestamp (used for
// auto-advance). Outside PhasePlaying nothing moves.
func Step(g *state.Game, delta float64, tilt geom.Vec2, now time.Time) StepResult {
	if g.Phase == state.PhaseWon && g.AutoAdvance > 0 && !g.WonAt.IsZero() && now.Sub(g.WonAt) >= g.AutoAdvance {
		NextLevel(g)
		Start(g)
		return StepResult{Phase: g.Phase, Advanced: true}
	}
	if g.Phase != state.PhasePlaying || g.Snapshot == nil {
		return StepResult{Phase: g.Phase}
	}

	p := g.Snapshot.Params
	m := g.Snapshot.Maze
	dt := physics.ClampStep(delta, p.MaxStep)
	g.Elapsed += max(delta, 0)

	res := StepResult{Dt: dt}
	accel := physics.TiltAccel(tilt, p.MaxAccel)
	for i, b := range g.Bodies {
		physics.Integrate(b, accel, p.Damping, dt)
		res.Contacts += physics.ResolveWalls(b, m.WallRectsNear(b.Pos), p.Restitution)

		if hit := physics.CheckHazards(b, m.Resets, m.Spikes, g.Elapsed); hit != physics.HitNone {
			b.Respawn(m.Starts)
			res.Respawns++
			log.WithFields(log.Fields{
				"level": g.Level,
				"body":  i,
				"spike": hit == physics.HitSpike,
			}).Debug("Ball respawned")

			kind := entities.HazardReset
			if hit == physics.HitSpike {
				kind = entities.HazardSpike
			}
			logMessage(g, "BALL_RESPAWNED", translate(entities.HazardKinds[kind].NameKey))
		}
	}

	if allInGoal(g) {
		setPhase(g, state.PhaseWon)
		g.WonAt = now
		res.Won = true
		if !g.WinRecorded {
			g.WinRecorded = true
			g.NotifyWon(state.LevelWonEvent{Level: g.Level, Seconds: g.Elapsed})
			logMessage(g, "LEVEL_CLEARED", g.Elapsed)
		}
	}

	res.Phase = g.Phase
	return res
}

func allInGoal(g *state.Game) bool {
	return len(g.Bodies) > 0 && g.BodiesInGoal() == len(g.Bodies)
}
