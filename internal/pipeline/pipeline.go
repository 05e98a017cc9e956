// Package pipeline implements the recruiter-facing stage transitions
// layered on the application store.
//
// The stage graph is deliberately free: any stage is reachable from any
// other, so a recruiter can always revert a candidate (for example back to
// Applied after a withdrawn offer). Offer Sent is not absorbing.
package pipeline

import (
	"context"
	"log/slog"

	"hirelink/internal/observability"
	"hirelink/internal/store"
)

// Pipeline mutates applications through the store's patch operation, each
// method enforcing a narrower contract than the generic update.
type Pipeline struct {
	store *store.Store
	log   *slog.Logger
}

// New creates a Pipeline over the given store.
func New(s *store.Store, log *slog.Logger) *Pipeline {
	return &Pipeline{store: s, log: log}
}

// MoveStage sets the application's stage. All four stages are reachable
// from any current stage.
func (p *Pipeline) MoveStage(ctx context.Context, id string, stage store.Stage) {
	p.store.Update(ctx, id, store.Patch{Stage: &stage})
	observability.RecordStageTransition(string(stage))
}

// Score records a candidate score in [1,5]. Out-of-range values are
// dropped without touching the stored score.
func (p *Pipeline) Score(ctx context.Context, id string, score int) {
	if score < 1 || score > 5 {
		p.log.Debug("score out of range, ignored", "id", id, "score", score)
		return
	}
	p.store.Update(ctx, id, store.Patch{Score: &score})
}

// SetNotes overwrites the recruiter notes. Notes are free text; no
// validation applies.
func (p *Pipeline) SetNotes(ctx context.Context, id string, notes string) {
	p.store.Update(ctx, id, store.Patch{Notes: &notes})
}

// ScheduleInterview records the interview slot and forces the stage to
// Interview Scheduled in the same patch, so the three fields can never be
// observed half-applied. Date and time are trusted as given; front ends
// run ValidateSchedule before calling this.
func (p *Pipeline) ScheduleInterview(ctx context.Context, id string, date, timeOfDay string) {
	stage := store.StageInterviewScheduled
	p.store.Update(ctx, id, store.Patch{
		Stage:         &stage,
		InterviewDate: &date,
		InterviewTime: &timeOfDay,
	})
	observability.RecordStageTransition(string(stage))
}
