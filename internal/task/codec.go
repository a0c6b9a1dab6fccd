package task

import (
	"strconv"
	"strings"
)

// Delimiter separates fields in a backing-file line.
const Delimiter = ","

// delimiterSubstitute replaces Delimiter inside text fields.
const delimiterSubstitute = ";"

// FieldCount is the number of fields in a record line.
const FieldCount = 5

// fieldReplacer maps newlines to spaces and the delimiter to its substitute.
// The replaced and substitute sets are disjoint, so replacement order is irrelevant.
var fieldReplacer = strings.NewReplacer(
	"\n", " ",
	"\r", " ",
	Delimiter, delimiterSubstitute,
)

// EncodeField makes text safe to store as one field. The transform is lossy:
// a stored ";" cannot be told apart from an original ",".
func EncodeField(s string) string {
	return fieldReplacer.Replace(s)
}

// EncodeRecord renders t as one backing-file line, without a line terminator.
func EncodeRecord(t Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		EncodeField(t.Title),
		EncodeField(t.Category),
		done,
		EncodeField(t.CreatedAt),
	}, Delimiter)
}

// DecodeLine parses one backing-file line. It returns false when the line should
// be skipped: blank, fewer than FieldCount fields, or a non-integer id.
// Fields past the fifth are ignored.
func DecodeLine(line string) (Task, bool) {
	if line == "" {
		return Task{}, false
	}

	// strings.Split keeps empty fields, including a trailing one
	parts := strings.Split(line, Delimiter)
	if len(parts) < FieldCount {
		return Task{}, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Task{}, false
	}

	return Task{
		ID:        id,
		Title:     parts[1],
		Category:  parts[2],
		Done:      parts[3] == "1",
		CreatedAt: parts[4],
	}, true
}
