package wizard

import (
	"context"
	"fmt"
	"hr-onboarding-backend/lib/onboarding/sequence"
	"hr-onboarding-backend/models"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrStepOutOfRange = errors.New("step is out of range")
	ErrStepLocked     = errors.New("complete the current step first")
)

// Orchestrator - walks the candidate through the onboarding steps
type Orchestrator struct {
	mu         sync.Mutex
	api        DocumentAPI
	session    *Session
	notifier   *Notifier
	onComplete func()
	steps      []sequence.Step
	current    int // 1-based
	furthest   int
	finished   bool
}

func NewOrchestrator(api DocumentAPI, session *Session, notifier *Notifier, onComplete func()) *Orchestrator {
	return &Orchestrator{
		api:        api,
		session:    session,
		notifier:   notifier,
		onComplete: onComplete,
		steps:      sequence.Steps(),
		current:    1,
		furthest:   1,
	}
}

// Mount - resumes at the first step that is not completed
func (o *Orchestrator) Mount(ctx context.Context) {
	if _, err := o.session.Token(); err != nil {
		o.notifier.Error(err.Error())
		return
	}
	statuses := make([]models.DocumentStatus, 0, len(o.steps))
	for _, step := range o.steps {
		status := models.DocumentNotStarted
		view, err := o.api.GetDocument(ctx, step.Type)
		if err != nil {
			o.notifier.Error(fmt.Sprintf("%s: %s", step.Title, err.Error()))
		} else if view != nil {
			status = view.DocumentStatus
		}
		statuses = append(statuses, status)
	}
	idx := sequence.ResumeIndex(statuses)

	o.mu.Lock()
	if idx == len(o.steps) {
		o.current = len(o.steps)
		o.furthest = o.current
		o.mu.Unlock()
		o.finish()
		return
	}
	o.current = idx + 1
	o.furthest = o.current
	o.mu.Unlock()
}

// Advance - moves to the next step, past the last one the onboarding is complete
func (o *Orchestrator) Advance() {
	o.mu.Lock()
	if o.current >= len(o.steps) {
		o.mu.Unlock()
		o.finish()
		return
	}
	o.current++
	if o.current > o.furthest {
		o.furthest = o.current
	}
	o.mu.Unlock()
}

// Completed - advances only when the submitted document is the current step
func (o *Orchestrator) Completed(docType models.DocumentType) {
	o.mu.Lock()
	current := o.steps[o.current-1].Type
	o.mu.Unlock()
	if current != docType {
		return
	}
	o.Advance()
}

// JumpTo - reopens a step that was already reached
func (o *Orchestrator) JumpTo(step int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if step < 1 || step > len(o.steps) {
		return ErrStepOutOfRange
	}
	if step > o.furthest {
		return ErrStepLocked
	}
	o.current = step
	return nil
}

func (o *Orchestrator) Current() sequence.Step {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.steps[o.current-1]
}

// Furthest - the highest step reached, kept when jumping back
func (o *Orchestrator) Furthest() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.furthest
}

func (o *Orchestrator) Finished() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.finished
}

func (o *Orchestrator) finish() {
	o.mu.Lock()
	if o.finished {
		o.mu.Unlock()
		return
	}
	o.finished = true
	o.mu.Unlock()
	if o.onComplete != nil {
		o.onComplete()
	}
}
