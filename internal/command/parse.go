package command

import (
	"strings"
	"unicode"
)

// Kind is the closed set of commands the shell understands.
type Kind int

const (
	Unknown Kind = iota
	Todo
	Deadline
	Event
	Delete
	Mark
	Unmark
	List
	Bye
	Find
)

var keywords = map[string]Kind{
	"todo":     Todo,
	"deadline": Deadline,
	"event":    Event,
	"delete":   Delete,
	"mark":     Mark,
	"unmark":   Unmark,
	"list":     List,
	"bye":      Bye,
	"find":     Find,
}

func (k Kind) String() string {
	switch k {
	case Todo:
		return "todo"
	case Deadline:
		return "deadline"
	case Event:
		return "event"
	case Delete:
		return "delete"
	case Mark:
		return "mark"
	case Unmark:
		return "unmark"
	case List:
		return "list"
	case Bye:
		return "bye"
	case Find:
		return "find"
	default:
		return "unknown"
	}
}

// Mutates reports whether a successful command of this kind changes the list.
func (k Kind) Mutates() bool {
	switch k {
	case Todo, Deadline, Event, Delete, Mark, Unmark:
		return true
	default:
		return false
	}
}

// Command is one parsed input line. Args holds everything after the first
// whitespace run; HasArgs is false when nothing followed the keyword.
type Command struct {
	Kind    Kind
	Keyword string
	Args    string
	HasArgs bool
}

// Parse classifies a raw line. It never fails: anything outside the known
// keywords becomes Unknown.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	keyword, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		keyword = line[:i]
		args = strings.TrimLeftFunc(line[i:], unicode.IsSpace)
	}
	kind, ok := keywords[strings.ToLower(keyword)]
	if !ok {
		kind = Unknown
	}
	return Command{Kind: kind, Keyword: keyword, Args: args, HasArgs: args != ""}
}
