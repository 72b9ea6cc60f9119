package booking

import (
	"context"
	"sync"
	"time"

	"github.com/example/table-booker/internal/dining"
)

type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// validTransitions is the authoritative workflow state machine definition.
var validTransitions = map[Phase][]Phase{
	PhaseEditing:    {PhaseSubmitting, PhaseFailed},
	PhaseSubmitting: {PhaseSucceeded, PhaseFailed},
	PhaseSucceeded:  {PhaseEditing},
	PhaseFailed:     {PhaseEditing},
}

func canTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Submitter is the slice of the remote gateway the workflow needs.
type Submitter interface {
	SubmitBooking(ctx context.Context, draft dining.BookingDraft) error
}

// Workflow drives one booking form through
// editing -> submitting -> (succeeded | failed) -> editing. It owns the draft
// exclusively; the selection coordinator resets it on restaurant change.
type Workflow struct {
	submitter Submitter
	now       func() time.Time
	notify    func()

	mu         sync.Mutex
	phase      Phase
	reason     string
	draft      dining.BookingDraft
	generation uint64
}

func NewWorkflow(s Submitter, notify func()) *Workflow {
	return &Workflow{
		submitter: s,
		now:       time.Now,
		notify:    notify,
		phase:     PhaseEditing,
	}
}

// UpdateDraft applies one field edit. Any edit after a settled attempt
// returns the workflow to editing and clears the surfaced message.
func (w *Workflow) UpdateDraft(mutate func(*dining.BookingDraft)) {
	w.mu.Lock()
	mutate(&w.draft)
	if w.phase == PhaseSucceeded || w.phase == PhaseFailed {
		w.phase = PhaseEditing
		w.reason = ""
	}
	w.mu.Unlock()
	w.emit()
}

// Submit validates the draft and, if it passes, sends it to the gateway.
// Returns false when the trigger is ignored because an attempt is already in
// flight; repeated interaction can never produce two gateway calls.
func (w *Workflow) Submit(ctx context.Context) bool {
	w.mu.Lock()
	if w.phase == PhaseSubmitting {
		w.mu.Unlock()
		return false
	}
	// A new attempt clears the previous result before starting.
	if w.phase == PhaseSucceeded || w.phase == PhaseFailed {
		w.phase = PhaseEditing
		w.reason = ""
	}

	res := Validate(w.draft, w.now())
	if !res.Valid() {
		// Validation failures never reach the network layer.
		w.transition(PhaseFailed, res.Reason())
		w.mu.Unlock()
		w.emit()
		return true
	}

	w.transition(PhaseSubmitting, "")
	w.generation++
	gen := w.generation
	draft := res.Draft
	w.mu.Unlock()
	w.emit()

	go func() {
		err := w.submitter.SubmitBooking(ctx, draft)

		w.mu.Lock()
		if w.generation != gen {
			// Selection changed while in flight; discard the result.
			w.mu.Unlock()
			return
		}
		if err != nil {
			w.transition(PhaseFailed, MsgSubmitFailed)
		} else {
			w.transition(PhaseSucceeded, "")
		}
		w.mu.Unlock()
		w.emit()
	}()
	return true
}

// Reset discards the draft and any settled or in-flight result. Called when
// the selected restaurant changes; an attempt still in flight is allowed to
// complete but its result is dropped by the generation check.
func (w *Workflow) Reset() {
	w.mu.Lock()
	w.generation++
	w.draft = dining.BookingDraft{}
	w.phase = PhaseEditing
	w.reason = ""
	w.mu.Unlock()
	w.emit()
}

// Phase returns the current workflow phase.
func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Reason returns the surfaced failure message, or "" when none is showing.
// At most one message shows at a time.
func (w *Workflow) Reason() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reason
}

// Draft returns a copy of the current draft.
func (w *Workflow) Draft() dining.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// transition applies a guarded phase change; callers hold w.mu.
func (w *Workflow) transition(to Phase, reason string) {
	if !canTransition(w.phase, to) {
		return
	}
	w.phase = to
	w.reason = reason
}

func (w *Workflow) emit() {
	if w.notify != nil {
		w.notify()
	}
}
