package planner

import (
	"errors"
	"fmt"
)

// Generation client failure classes. The client never retries; callers
// decide whether a retry makes sense.
var (
	ErrServiceUnavailable = errors.New("generation service unavailable")
	ErrMalformedResponse  = errors.New("generation service returned malformed response")
	ErrQuotaExceeded      = errors.New("generation service quota exceeded")
)

// ErrEmptyPlan is returned by Normalize when no day entry survives
// validation.
var ErrEmptyPlan = errors.New("plan contains no valid day entries")

// Stage identifies a step of the generation pipeline.
type Stage string

const (
	StageRequested   Stage = "requested"
	StageGenerating  Stage = "generating"
	StageNormalizing Stage = "normalizing"
	StageDeriving    Stage = "deriving"
	StagePersisting  Stage = "persisting"
	StagePersisted   Stage = "persisted"
)

// StageError records which pipeline stage failed. Any stage failure
// aborts the request; no partial state is persisted.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
