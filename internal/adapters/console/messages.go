package console

import "strings"

// Divider frames every block of output.
const Divider = "____________________________________________________________"

const (
	msgWelcome    = "What can I do for you?"
	msgGoodbye    = "Bye. Hope to see you again soon!"
	msgNoData     = "No previous data found /:"
	msgAdded      = "Got it. I've added this task:"
	msgRemoved    = "Noted. I've removed this task:"
	msgMarked     = "Nice! I've marked this task as done:"
	msgUnmarked   = "OK, I've marked this task as not done yet:"
	msgList       = "Here are the tasks in your list:"
	msgEmptyList  = "Your list is empty!"
	msgFound      = "Here are the matching tasks in your list:"
	msgNoneFound  = "No matching tasks found."
	msgTaskCount  = "Now you have %d tasks in the list."
	msgTaskIndent = "  "
)

var logo = strings.Join([]string{
	` ___ ___  _   ___ ___ __  __   _   _  _`,
	`/ __| _ \/_\ / __| __|  \/  | /_\ | \| |`,
	`\__ \  _/ _ \ (__| _|| |\/| |/ _ \| .` + "`" + ` |`,
	`|___/_|/_/ \_\___|___|_|  |_/_/ \_\_|\_|`,
}, "\n")

var helpLines = []string{
	"- `list` :",
	"    Shows a list of all tasks.",
	"- `todo DESCRIPTION` :",
	"    Adds a todo to the current list of tasks.",
	"- `deadline DESCRIPTION /by DATETIME` :",
	"    Adds a deadline to the current list of tasks.",
	"- `event DESCRIPTION /from START_DATETIME /to END_DATETIME` :",
	"    Adds an event to the current list of tasks.",
	"- `find KEYWORD` :",
	"    Finds tasks whose description contain the given keyword.",
	"- `delete INDEX` :",
	"    Deletes the specified task from the list of tasks.",
	"- `mark INDEX` :",
	"    Marks the specified task from the list of tasks as done.",
	"- `unmark INDEX` :",
	"    Marks the specified task from the list of tasks as not done.",
	"- `help` :",
	"    Shows this list of commands.",
	"- `bye` :",
	"    Exits the program.",
	"DATETIME is written as yyyy-MM-dd HHmm, e.g. 2019-12-02 1800.",
}
