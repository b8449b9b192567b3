// Package domain contains the core domain models of the task tracker.
package domain

import (
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// TaskList is an ordered collection of tasks. Callers address tasks with
// 1-based indices, matching what the user sees in a listing.
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates a list holding the given tasks in order.
func NewTaskList(tasks ...*Task) *TaskList {
	return &TaskList{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks in the list.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a snapshot of the tasks in display order.
func (l *TaskList) Tasks() []*Task {
	return slices.Clone(l.tasks)
}

// Add appends an already constructed task.
func (l *TaskList) Add(t *Task) *Task {
	l.tasks = append(l.tasks, t)
	return t
}

// AddTodo creates a todo and appends it to the list.
func (l *TaskList) AddTodo(description string) (*Task, error) {
	t, err := NewTodo(description)
	if err != nil {
		return nil, err
	}
	return l.Add(t), nil
}

// AddDeadline creates a deadline and appends it to the list.
func (l *TaskList) AddDeadline(description string, by time.Time) (*Task, error) {
	t, err := NewDeadline(description, by)
	if err != nil {
		return nil, err
	}
	return l.Add(t), nil
}

// AddEvent creates an event and appends it to the list.
func (l *TaskList) AddEvent(description string, from, to time.Time) (*Task, error) {
	t, err := NewEvent(description, from, to)
	if err != nil {
		return nil, err
	}
	return l.Add(t), nil
}

// Get returns the task at the 1-based index.
func (l *TaskList) Get(index int) (*Task, error) {
	i, err := l.offset(index)
	if err != nil {
		return nil, err
	}
	return l.tasks[i], nil
}

// Mark sets the task at the 1-based index as done.
func (l *TaskList) Mark(index int) (*Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.Mark()
	return t, nil
}

// Unmark sets the task at the 1-based index as not done.
func (l *TaskList) Unmark(index int) (*Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.Unmark()
	return t, nil
}

// Delete removes the task at the 1-based index and returns it.
// Tasks after it move up by one position.
func (l *TaskList) Delete(index int) (*Task, error) {
	i, err := l.offset(index)
	if err != nil {
		return nil, err
	}
	removed := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return removed, nil
}

// Find returns the tasks whose description contains keyword, in list order.
// Matching is case-sensitive.
func (l *TaskList) Find(keyword string) []*Task {
	matches := make([]*Task, 0)
	for _, t := range l.tasks {
		if strings.Contains(t.description, keyword) {
			matches = append(matches, t)
		}
	}
	return matches
}

// offset translates a 1-based index into a slice offset.
func (l *TaskList) offset(index int) (int, error) {
	if index < 1 || index > len(l.tasks) {
		err := zerr.Wrap(ErrIndexOutOfRange, "no task at this position")
		err = zerr.With(err, "index", index)
		return 0, zerr.With(err, "size", len(l.tasks))
	}
	return index - 1, nil
}
