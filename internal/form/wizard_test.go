package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"hirelink/internal/storage"
	"hirelink/internal/store"
)

type memBackend struct{ data []byte }

func (m *memBackend) Load(_ context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, storage.ErrNotFound
	}
	return m.data, nil
}

func (m *memBackend) Save(_ context.Context, data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func newTestWizard(t *testing.T) (*Wizard, *store.Store) {
	t.Helper()
	s := store.New(context.Background(), &memBackend{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w, err := New(s, "1")
	if err != nil {
		t.Fatalf("New wizard failed: %v", err)
	}
	return w, s
}

func fillValidPersonal(w *Wizard) {
	w.SetPersonal("Jane Doe", "jane@x.com", "555-123-4567")
}

func fillValidExperience(w *Wizard) {
	w.SetYearsOfExperience(3)
	w.AddSkill("go")
}

func TestNew_UnknownJob(t *testing.T) {
	s := store.New(context.Background(), &memBackend{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if _, err := New(s, "999"); !errors.Is(err, store.ErrJobNotFound) {
		t.Fatalf("got %v, want ErrJobNotFound", err)
	}
}

func TestNext_BlocksOnInvalidStep(t *testing.T) {
	w, _ := newTestWizard(t)

	if w.Next() {
		t.Fatal("empty personal step must not advance")
	}
	if w.Step() != StepPersonal {
		t.Errorf("got step %q, want personal", w.Step())
	}
	if len(w.Errors()) == 0 {
		t.Error("expected field errors to be recorded")
	}
}

func TestNext_AdvancesAndClearsErrors(t *testing.T) {
	w, _ := newTestWizard(t)

	w.Next() // fail once to populate errors
	fillValidPersonal(w)
	if !w.Next() {
		t.Fatalf("valid personal step must advance, errors: %v", w.Errors())
	}
	if w.Step() != StepExperience {
		t.Errorf("got step %q, want experience", w.Step())
	}
	if len(w.Errors()) != 0 {
		t.Errorf("errors must be cleared on step change, got %v", w.Errors())
	}
}

func TestPrevious_AlwaysSucceedsAndClearsErrors(t *testing.T) {
	w, _ := newTestWizard(t)
	fillValidPersonal(w)
	w.Next()
	w.Next() // fail the experience step

	w.Previous()
	if w.Step() != StepPersonal {
		t.Errorf("got step %q, want personal", w.Step())
	}
	if len(w.Errors()) != 0 {
		t.Errorf("Previous must clear errors, got %v", w.Errors())
	}

	w.Previous() // already at the first step
	if w.Step() != StepPersonal {
		t.Error("Previous at the first step must stay put")
	}
}

func TestAddSkill_NormalizesAndDeduplicates(t *testing.T) {
	w, _ := newTestWizard(t)

	if !w.AddSkill("  Go ") {
		t.Fatal("expected skill to be added")
	}
	if w.AddSkill("go") {
		t.Error("duplicate (case-insensitive) must be rejected")
	}
	if w.AddSkill("") {
		t.Error("empty skill must be rejected")
	}
	if got := w.Data().Skills; len(got) != 1 || got[0] != "go" {
		t.Errorf("got skills %v, want [go]", got)
	}
}

func TestAddSkill_CapsAtFifteen(t *testing.T) {
	w, _ := newTestWizard(t)

	for i := 0; i < MaxSkills; i++ {
		if !w.AddSkill(strings.Repeat("x", i+1)) {
			t.Fatalf("skill %d should fit under the cap", i+1)
		}
	}
	if w.AddSkill("one-too-many") {
		t.Error("sixteenth skill must be rejected")
	}
	if len(w.Data().Skills) != MaxSkills {
		t.Errorf("got %d skills, want %d", len(w.Data().Skills), MaxSkills)
	}
}

func TestRemoveSkill(t *testing.T) {
	w, _ := newTestWizard(t)
	w.AddSkill("go")
	w.AddSkill("sql")

	w.RemoveSkill("GO")
	if got := w.Data().Skills; len(got) != 1 || got[0] != "sql" {
		t.Errorf("got skills %v, want [sql]", got)
	}
}

func TestSubmit_BeforeFinalStep(t *testing.T) {
	w, _ := newTestWizard(t)
	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got %v, want ErrIncomplete", err)
	}
}

func TestSubmit_MissingResume(t *testing.T) {
	w, _ := newTestWizard(t)
	fillValidPersonal(w)
	w.Next()
	fillValidExperience(w)
	w.Next()

	_, err := w.Submit(context.Background())
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}
	if w.Errors()["resume"] != "Resume file is required" {
		t.Errorf("got %v", w.Errors())
	}
}

func TestSubmit_EndToEnd(t *testing.T) {
	w, s := newTestWizard(t)

	fillValidPersonal(w)
	if !w.Next() {
		t.Fatalf("personal step failed: %v", w.Errors())
	}
	fillValidExperience(w)
	if !w.Next() {
		t.Fatalf("experience step failed: %v", w.Errors())
	}
	if err := w.AttachResume("resume.pdf", strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("AttachResume failed: %v", err)
	}

	id, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !w.Submitted() || w.SubmittedID() != id {
		t.Error("wizard must enter the terminal submitted state")
	}

	app, ok := s.Get(id)
	if !ok {
		t.Fatal("submitted application must be retrievable immediately")
	}
	if app.Stage != store.StageApplied {
		t.Errorf("got stage %q, want Applied", app.Stage)
	}
	if app.CandidateName != "Jane Doe" || app.YearsOfExperience != 3 {
		t.Errorf("draft not carried into the record: %+v", app)
	}
	if len(app.Skills) != 1 || app.Skills[0] != "go" {
		t.Errorf("got skills %v", app.Skills)
	}
	if app.ResumeFileName != "resume.pdf" {
		t.Errorf("got resume name %q", app.ResumeFileName)
	}
}

func TestSubmit_TerminalStateRejectsResubmission(t *testing.T) {
	w, _ := newTestWizard(t)
	fillValidPersonal(w)
	w.Next()
	fillValidExperience(w)
	w.Next()
	w.AttachResume("resume.pdf", strings.NewReader("%PDF-1.4"))
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("got %v, want ErrAlreadySubmitted", err)
	}
}
