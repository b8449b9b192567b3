package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Kind tags the variant of a Task.
type Kind string

const (
	// KindTodo is a task without any date attached.
	KindTodo Kind = "T"
	// KindDeadline is a task that has to be done by a point in time.
	KindDeadline Kind = "D"
	// KindEvent is a task that spans a time range.
	KindEvent Kind = "E"
)

// DisplayTimeLayout is the layout used when a task date is shown to the user.
const DisplayTimeLayout = "Jan 02 2006 15:04"

// Task is a single unit of work. The variant-specific dates are only
// meaningful for the matching Kind; the description never changes once the
// task has been created.
type Task struct {
	kind        Kind
	description string
	done        bool
	by          time.Time
	from        time.Time
	to          time.Time
}

// NewTodo creates a todo task.
func NewTodo(description string) (*Task, error) {
	if err := validateDescription(KindTodo, description); err != nil {
		return nil, err
	}
	return &Task{kind: KindTodo, description: description}, nil
}

// NewDeadline creates a deadline task due at by.
func NewDeadline(description string, by time.Time) (*Task, error) {
	if err := validateDescription(KindDeadline, description); err != nil {
		return nil, err
	}
	if by.IsZero() {
		return nil, zerr.With(zerr.Wrap(ErrIncompleteDescription, "deadline needs a due date"), "kind", string(KindDeadline))
	}
	return &Task{kind: KindDeadline, description: description, by: by}, nil
}

// NewEvent creates an event running from from until to.
func NewEvent(description string, from, to time.Time) (*Task, error) {
	if err := validateDescription(KindEvent, description); err != nil {
		return nil, err
	}
	if from.IsZero() || to.IsZero() {
		return nil, zerr.With(zerr.Wrap(ErrIncompleteDescription, "event needs a start and an end"), "kind", string(KindEvent))
	}
	if to.Before(from) {
		err := zerr.Wrap(ErrIncompleteDescription, "event ends before it starts")
		err = zerr.With(err, "from", from.Format(DisplayTimeLayout))
		return nil, zerr.With(err, "to", to.Format(DisplayTimeLayout))
	}
	return &Task{kind: KindEvent, description: description, from: from, to: to}, nil
}

func validateDescription(kind Kind, description string) error {
	if strings.TrimSpace(description) == "" {
		return zerr.With(zerr.Wrap(ErrIncompleteDescription, "description is empty"), "kind", string(kind))
	}
	return nil
}

// Kind returns the variant tag.
func (t *Task) Kind() Kind { return t.kind }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// Done reports whether the task is marked as done.
func (t *Task) Done() bool { return t.done }

// By returns the due date of a deadline.
func (t *Task) By() time.Time { return t.by }

// From returns the start of an event.
func (t *Task) From() time.Time { return t.from }

// To returns the end of an event.
func (t *Task) To() time.Time { return t.to }

// Mark sets the task as done.
func (t *Task) Mark() { t.done = true }

// Unmark sets the task as not done.
func (t *Task) Unmark() { t.done = false }

// StatusIcon returns "X" for done tasks and a blank otherwise.
func (t *Task) StatusIcon() string {
	if t.done {
		return "X"
	}
	return " "
}

// String renders the task the way it is shown in lists, e.g. "[T][ ] read book".
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString("[" + string(t.kind) + "][" + t.StatusIcon() + "] " + t.description)

	switch t.kind {
	case KindDeadline:
		b.WriteString(" (by: " + t.by.Format(DisplayTimeLayout) + ")")
	case KindEvent:
		b.WriteString(" (from: " + t.from.Format(DisplayTimeLayout) + " to: " + t.to.Format(DisplayTimeLayout) + ")")
	case KindTodo:
	}

	return b.String()
}
