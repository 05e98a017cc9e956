package form

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MaxResumeSize caps the resume payload at 5 MB.
const MaxResumeSize = 5 * 1024 * 1024

// resumeTypes maps accepted resume file extensions to their MIME types.
var resumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ErrResumeType is returned for extensions outside the allow-list.
var ErrResumeType = errors.New("only PDF and DOC files are allowed")

// ErrResumeTooLarge is returned for payloads over MaxResumeSize.
var ErrResumeTooLarge = errors.New("file size must be less than 5MB")

// AttachResume reads the resume payload from r and stores it in the draft
// as a base64 data URL alongside the file name. Type and size violations
// and read failures surface as the step-local "resume" error and leave the
// draft unchanged; the workflow does not advance past them.
func (w *Wizard) AttachResume(fileName string, r io.Reader) error {
	mime, ok := resumeTypes[strings.ToLower(filepath.Ext(fileName))]
	if !ok {
		w.errors["resume"] = "Only PDF and DOC files are allowed"
		return ErrResumeType
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxResumeSize+1))
	if err != nil {
		w.errors["resume"] = "Failed to read file"
		return fmt.Errorf("read resume: %w", err)
	}
	if len(data) > MaxResumeSize {
		w.errors["resume"] = "File size must be less than 5MB"
		return ErrResumeTooLarge
	}

	w.data.ResumeFile = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	w.data.ResumeFileName = fileName
	delete(w.errors, "resume")
	return nil
}

// ClearResume removes the attached payload from the draft.
func (w *Wizard) ClearResume() {
	w.data.ResumeFile = ""
	w.data.ResumeFileName = ""
}
