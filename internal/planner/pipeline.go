package planner

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/vitalplan/backend/internal/models"
)

// Generator produces a raw candidate plan from stored preferences. It
// must not mutate persistent state; the call is the pipeline's only
// blocking point and must honor ctx cancellation.
type Generator interface {
	GenerateMealPlan(ctx context.Context, prefs []models.MealPreference) (*RawPlan, error)
}

// Store persists a finished plan together with its shopping list in a
// single transaction.
type Store interface {
	Save(ctx context.Context, userID uuid.UUID, plan *CanonicalPlan, list ShoppingList) (uuid.UUID, error)
}

// Result is the outcome of a successful pipeline run.
type Result struct {
	PlanID       uuid.UUID
	Plan         *CanonicalPlan
	ShoppingList ShoppingList
}

// Pipeline runs a single generation request through its sequential
// stages: generate, normalize, derive, persist. Each stage's output is
// the next stage's entire input; a failure at any stage aborts the run
// with no partial persistence.
type Pipeline struct {
	generator Generator
	store     Store
}

// NewPipeline creates a Pipeline over the given collaborators.
func NewPipeline(generator Generator, store Store) *Pipeline {
	return &Pipeline{generator: generator, store: store}
}

// Run executes the pipeline for one user. Stage failures are wrapped in
// a StageError naming the stage that failed.
func (p *Pipeline) Run(ctx context.Context, userID uuid.UUID, prefs []models.MealPreference) (*Result, error) {
	raw, err := p.generator.GenerateMealPlan(ctx, prefs)
	if err != nil {
		return nil, p.fail(userID, StageGenerating, err)
	}

	plan, err := Normalize(raw)
	if err != nil {
		return nil, p.fail(userID, StageNormalizing, err)
	}

	list := DeriveShoppingList(plan)

	planID, err := p.store.Save(ctx, userID, plan, list)
	if err != nil {
		return nil, p.fail(userID, StagePersisting, err)
	}

	return &Result{PlanID: planID, Plan: plan, ShoppingList: list}, nil
}

// fail logs the failure class distinctly for diagnosis; the user-visible
// outcome is a uniform "please try again" regardless of class.
func (p *Pipeline) fail(userID uuid.UUID, stage Stage, err error) error {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		log.Printf("pipeline: user %s failed at %s: quota exceeded", userID, stage)
	case errors.Is(err, ErrServiceUnavailable):
		log.Printf("pipeline: user %s failed at %s: service unavailable: %v", userID, stage, err)
	case errors.Is(err, ErrMalformedResponse):
		log.Printf("pipeline: user %s failed at %s: malformed response: %v", userID, stage, err)
	case errors.Is(err, ErrEmptyPlan):
		log.Printf("pipeline: user %s failed at %s: empty plan", userID, stage)
	default:
		log.Printf("pipeline: user %s failed at %s: %v", userID, stage, err)
	}
	return &StageError{Stage: stage, Err: err}
}
