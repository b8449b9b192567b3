package storage

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"time"

	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	fieldSep   = '|'
	escapeChar = '\\'
	doneFlag   = "1"
	undoneFlag = "0"

	// RecordTimeLayout is the layout of dates inside a record.
	RecordTimeLayout = "2006-01-02T15:04"
)

// Encode serializes the list, one record per line:
//
//	T|0|read book
//	D|1|return book|2019-12-02T18:00
//	E|0|project meeting|2019-12-02T14:00|2019-12-02T16:00
//
// Pipes and backslashes inside the description are escaped with a backslash.
func Encode(list *domain.TaskList) []byte {
	var buf bytes.Buffer
	for _, t := range list.Tasks() {
		buf.WriteString(EncodeTask(t))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// EncodeTask serializes a single task without the trailing newline.
func EncodeTask(t *domain.Task) string {
	flag := undoneFlag
	if t.Done() {
		flag = doneFlag
	}

	fields := []string{string(t.Kind()), flag, escape(t.Description())}
	switch t.Kind() {
	case domain.KindDeadline:
		fields = append(fields, t.By().Format(RecordTimeLayout))
	case domain.KindEvent:
		fields = append(fields, t.From().Format(RecordTimeLayout), t.To().Format(RecordTimeLayout))
	case domain.KindTodo:
	}

	return strings.Join(fields, string(fieldSep))
}

// Decode reads records until EOF. Blank lines are skipped; any other line
// that is not a valid record fails with domain.ErrDataCorruption. Records have
// no length limit, since escaping can make one longer than the command it came from.
func Decode(r io.Reader) (*domain.TaskList, error) {
	list := domain.NewTaskList()
	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, zerr.Wrap(domain.ErrStoreReadFailed, readErr.Error())
		}
		if line == "" && readErr != nil {
			break
		}

		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			t, err := DecodeTask(line)
			if err != nil {
				return nil, zerr.With(err, "line", lineNo)
			}
			list.Add(t)
		}

		if readErr != nil {
			break
		}
	}

	return list, nil
}

// DecodeTask parses a single record.
func DecodeTask(record string) (*domain.Task, error) {
	fields, err := split(record)
	if err != nil {
		return nil, err
	}
	if len(fields) < 3 {
		return nil, corrupt("record has too few fields", record)
	}

	kind, flag, description := domain.Kind(fields[0]), fields[1], fields[2]
	if flag != doneFlag && flag != undoneFlag {
		return nil, corrupt("done flag must be 0 or 1", record)
	}
	if strings.TrimSpace(description) == "" {
		return nil, corrupt("record has an empty description", record)
	}

	var t *domain.Task
	switch kind {
	case domain.KindTodo:
		if len(fields) != 3 {
			return nil, corrupt("todo record must have 3 fields", record)
		}
		t, err = domain.NewTodo(description)
	case domain.KindDeadline:
		if len(fields) != 4 {
			return nil, corrupt("deadline record must have 4 fields", record)
		}
		var by time.Time
		if by, err = parseRecordTime(fields[3], record); err != nil {
			return nil, err
		}
		t, err = domain.NewDeadline(description, by)
	case domain.KindEvent:
		if len(fields) != 5 {
			return nil, corrupt("event record must have 5 fields", record)
		}
		var from, to time.Time
		if from, err = parseRecordTime(fields[3], record); err != nil {
			return nil, err
		}
		if to, err = parseRecordTime(fields[4], record); err != nil {
			return nil, err
		}
		t, err = domain.NewEvent(description, from, to)
	default:
		return nil, corrupt("unknown task kind", record)
	}

	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDataCorruption, err.Error()), "record", record)
	}
	if flag == doneFlag {
		t.Mark()
	}

	return t, nil
}

func parseRecordTime(value, record string) (time.Time, error) {
	t, err := time.ParseInLocation(RecordTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, zerr.With(corrupt("invalid date", record), "value", value)
	}
	return t, nil
}

func escape(s string) string {
	if !strings.ContainsAny(s, `|\`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == fieldSep || r == escapeChar {
			b.WriteRune(escapeChar)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// split cuts a record on unescaped separators and unescapes each field.
func split(record string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		escaped bool
	)

	for _, r := range record {
		switch {
		case escaped:
			if r != fieldSep && r != escapeChar {
				return nil, corrupt("invalid escape sequence", record)
			}
			current.WriteRune(r)
			escaped = false
		case r == escapeChar:
			escaped = true
		case r == fieldSep:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if escaped {
		return nil, corrupt("dangling escape at end of record", record)
	}

	return append(fields, current.String()), nil
}

func corrupt(msg, record string) error {
	return zerr.With(zerr.Wrap(domain.ErrDataCorruption, msg), "record", record)
}
