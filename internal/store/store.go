package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hirelink/internal/observability"
	"hirelink/internal/storage"
)

// ErrJobNotFound is returned by Create when the input references a job id
// that is not part of the seeded set.
var ErrJobNotFound = errors.New("job not found")

// Store owns the authoritative Application collection. It is the single
// writer in a single-actor system: all mutations run synchronously on the
// caller's goroutine and the durable copy is rewritten before a mutation
// returns, so the persisted collection is never more stale than memory.
type Store struct {
	backend storage.Backend
	log     *slog.Logger

	jobs []Job
	apps []Application
}

// New constructs a Store and loads the persisted collection. A missing or
// unreadable durable copy degrades to an empty collection; it never fails
// construction.
func New(ctx context.Context, backend storage.Backend, log *slog.Logger) *Store {
	s := &Store{
		backend: backend,
		log:     log,
		jobs:    seedJobs(),
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("failed to load applications, starting empty", "error", err)
		}
		return
	}
	var apps []Application
	if err := json.Unmarshal(data, &apps); err != nil {
		s.log.Warn("failed to parse persisted applications, starting empty", "error", err)
		return
	}
	s.apps = apps
}

// persist rewrites the full collection. Write failures are logged and
// skipped; the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.apps)
	if err != nil {
		s.log.Error("failed to serialize applications", "error", err)
		return
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.log.Error("failed to persist applications", "error", err)
	}
}

// Jobs returns the fixed seed set of open positions.
func (s *Store) Jobs() []Job {
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

// Job returns the seeded job with the given id.
func (s *Store) Job(id string) (Job, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// Applications returns a snapshot of the collection in insertion order.
func (s *Store) Applications() []Application {
	apps := make([]Application, len(s.apps))
	for i, app := range s.apps {
		apps[i] = cloneApplication(app)
	}
	return apps
}

// Get returns the application with the given id. The second return value
// is false when no such application exists.
func (s *Store) Get(id string) (Application, bool) {
	for _, app := range s.apps {
		if app.ID == id {
			return cloneApplication(app), true
		}
	}
	return Application{}, false
}

// Create appends a new application with a fresh id, the current timestamp
// and the Applied stage, persists the collection and returns the id.
// The input's JobID must reference a seeded job.
func (s *Store) Create(ctx context.Context, in CreateInput) (string, error) {
	if _, ok := s.Job(in.JobID); !ok {
		return "", fmt.Errorf("create application: %w: %s", ErrJobNotFound, in.JobID)
	}

	app := Application{
		ID:                newApplicationID(),
		JobID:             in.JobID,
		CandidateName:     in.CandidateName,
		Email:             in.Email,
		Phone:             in.Phone,
		YearsOfExperience: in.YearsOfExperience,
		Skills:            append([]string(nil), in.Skills...),
		PortfolioLink:     in.PortfolioLink,
		ResumeFile:        in.ResumeFile,
		ResumeFileName:    in.ResumeFileName,
		AppliedAt:         time.Now().UTC().Format(time.RFC3339),
		Stage:             StageApplied,
	}
	s.apps = append(s.apps, app)
	s.persist(ctx)
	observability.RecordApplicationCreated()

	s.log.Info("application created", "id", app.ID, "job_id", app.JobID)
	return app.ID, nil
}

// Update merges the patch into the application with the given id and
// persists the collection. An unknown id is a no-op: mutation callers are
// not expected to check existence first, and there is no delete path that
// could surface this in normal operation.
func (s *Store) Update(ctx context.Context, id string, patch Patch) {
	for i := range s.apps {
		if s.apps[i].ID == id {
			patch.apply(&s.apps[i])
			s.persist(ctx)
			return
		}
	}
	s.log.Debug("update skipped, unknown application", "id", id)
}

// newApplicationID generates a collision-free id from the current time in
// milliseconds plus a random uuid fragment.
func newApplicationID() string {
	return fmt.Sprintf("APP_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func cloneApplication(app Application) Application {
	app.Skills = append([]string(nil), app.Skills...)
	if app.Score != nil {
		score := *app.Score
		app.Score = &score
	}
	return app
}
