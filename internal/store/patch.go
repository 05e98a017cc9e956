package store

// Patch is a partial update of an Application's mutable fields.
// A nil field means "leave the current value alone"; immutable fields
// have no representation here and so can never be overwritten.
type Patch struct {
	Stage         *Stage
	Score         *int
	Notes         *string
	InterviewDate *string
	InterviewTime *string
}

// apply merges p into app. Supplied fields overwrite, all others retain
// their prior values.
func (p Patch) apply(app *Application) {
	if p.Stage != nil {
		app.Stage = *p.Stage
	}
	if p.Score != nil {
		score := *p.Score
		app.Score = &score
	}
	if p.Notes != nil {
		app.Notes = *p.Notes
	}
	if p.InterviewDate != nil {
		app.InterviewDate = *p.InterviewDate
	}
	if p.InterviewTime != nil {
		app.InterviewTime = *p.InterviewTime
	}
}
