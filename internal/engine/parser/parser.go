// Package parser turns raw command lines into validated commands.
package parser

import (
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
)

// Markers separating the description from the dates. A marker only counts as a
// whole word; the first such occurrence wins, so a description that itself
// contains " /by " is cut there.
const (
	markerBy   = "/by"
	markerFrom = "/from"
	markerTo   = "/to"
)

// DefaultLayouts are the date/time layouts accepted for /by, /from and /to.
var DefaultLayouts = []string{
	"2006-01-02 1504",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2/1/2006 1504",
	"2/1/2006 15:04",
	"2006-01-02",
	"2/1/2006",
}

// Parser validates command lines. It never touches a task list.
type Parser struct {
	layouts  []string
	location *time.Location
}

// New creates a Parser. Extra layouts are tried before DefaultLayouts.
func New(extraLayouts ...string) *Parser {
	return &Parser{
		layouts:  slices.Concat(extraLayouts, DefaultLayouts),
		location: time.Local,
	}
}

// Parse splits the line on whitespace and validates the arguments of the action.
func (p *Parser) Parse(line string) (domain.Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidAction, "empty command")
	}

	action := domain.Action(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch action {
	case domain.ActionExit, domain.ActionList, domain.ActionHelp:
		return domain.Command{Action: action}, nil
	case domain.ActionMark, domain.ActionUnmark, domain.ActionDelete:
		index, err := parseIndex(action, fields[1:])
		if err != nil {
			return domain.Command{}, err
		}
		return domain.Command{Action: action, Index: index}, nil
	case domain.ActionTodo:
		if rest == "" {
			return domain.Command{}, incomplete(action, "the description of a todo cannot be empty")
		}
		return domain.Command{Action: action, Description: rest}, nil
	case domain.ActionDeadline:
		return p.parseDeadline(rest)
	case domain.ActionEvent:
		return p.parseEvent(rest)
	case domain.ActionFind:
		if rest == "" {
			return domain.Command{}, incomplete(action, "find needs a keyword")
		}
		return domain.Command{Action: action, Keyword: rest}, nil
	default:
		return domain.Command{}, zerr.With(zerr.Wrap(domain.ErrInvalidAction, "unknown command"), "action", fields[0])
	}
}

func (p *Parser) parseDeadline(rest string) (domain.Command, error) {
	description, byText, found := cutMarker(rest, markerBy)
	if !found {
		return domain.Command{}, incomplete(domain.ActionDeadline, "a deadline needs /by")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Command{}, incomplete(domain.ActionDeadline, "the description of a deadline cannot be empty")
	}

	by, err := p.parseTime(domain.ActionDeadline, markerBy, byText)
	if err != nil {
		return domain.Command{}, err
	}

	return domain.Command{Action: domain.ActionDeadline, Description: description, By: by}, nil
}

func (p *Parser) parseEvent(rest string) (domain.Command, error) {
	description, period, found := cutMarker(rest, markerFrom)
	if !found {
		return domain.Command{}, incomplete(domain.ActionEvent, "an event needs /from")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Command{}, incomplete(domain.ActionEvent, "the description of an event cannot be empty")
	}

	fromText, toText, found := cutMarker(period, markerTo)
	if !found {
		return domain.Command{}, incomplete(domain.ActionEvent, "an event needs /to after /from")
	}

	from, err := p.parseTime(domain.ActionEvent, markerFrom, fromText)
	if err != nil {
		return domain.Command{}, err
	}
	to, err := p.parseTime(domain.ActionEvent, markerTo, toText)
	if err != nil {
		return domain.Command{}, err
	}

	return domain.Command{Action: domain.ActionEvent, Description: description, From: from, To: to}, nil
}

// parseTime tries every layout in order.
func (p *Parser) parseTime(action domain.Action, marker, text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, zerr.With(incomplete(action, "missing date/time"), "marker", marker)
	}

	for _, layout := range p.layouts {
		if t, err := time.ParseInLocation(layout, text, p.location); err == nil {
			return t, nil
		}
	}

	err := zerr.With(incomplete(action, "unrecognised date/time"), "marker", marker)
	return time.Time{}, zerr.With(err, "value", text)
}

func parseIndex(action domain.Action, args []string) (int, error) {
	if len(args) == 0 {
		err := zerr.Wrap(domain.ErrIndexOutOfRange, "missing task number")
		return 0, zerr.With(err, "action", string(action))
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrIndexOutOfRange, "task number is not an integer"), "action", string(action))
		return 0, zerr.With(wrapped, "argument", args[0])
	}

	return index, nil
}

// cutMarker splits s around the first occurrence of marker that is bounded by
// whitespace or the ends of s.
func cutMarker(s, marker string) (before, after string, found bool) {
	for offset := 0; offset < len(s); {
		i := strings.Index(s[offset:], marker)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(marker)
		if (start == 0 || isSpace(s[start-1])) && (end == len(s) || isSpace(s[end])) {
			return s[:start], s[end:], true
		}
		offset = start + 1
	}
	return s, "", false
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

func incomplete(action domain.Action, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrIncompleteDescription, msg), "action", string(action))
}
