package domain

// ResultKind identifies what a command did, so the UI can pick the right message.
type ResultKind string

const (
	// ResultAdded reports a newly added task.
	ResultAdded ResultKind = "added"
	// ResultRemoved reports a deleted task.
	ResultRemoved ResultKind = "removed"
	// ResultMarked reports a task marked as done.
	ResultMarked ResultKind = "marked"
	// ResultUnmarked reports a task marked as not done.
	ResultUnmarked ResultKind = "unmarked"
	// ResultListed carries the full list.
	ResultListed ResultKind = "listed"
	// ResultFound carries the tasks matching a keyword.
	ResultFound ResultKind = "found"
	// ResultHelp asks for the command reference.
	ResultHelp ResultKind = "help"
	// ResultExit ends the session.
	ResultExit ResultKind = "exit"
)

// Result is the feedback produced by applying a Command.
type Result struct {
	Kind ResultKind
	// Task is the task that was added, removed, marked or unmarked.
	Task *Task
	// Tasks holds the listing for ResultListed and ResultFound.
	Tasks []*Task
	// Count is the list length after the command ran.
	Count int
}

// Mutates reports whether the command changed the list and the list has to be persisted.
func (r Result) Mutates() bool {
	switch r.Kind {
	case ResultAdded, ResultRemoved, ResultMarked, ResultUnmarked:
		return true
	case ResultListed, ResultFound, ResultHelp, ResultExit:
		return false
	default:
		return false
	}
}
