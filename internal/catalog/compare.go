package catalog

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var referenceRe = regexp.MustCompile(`^(.*?):([0-9]+)`)

// firstReference splits the first "file:line" item of a reference comment.
func firstReference(m *Message) (string, int, bool) {
	match := referenceRe.FindStringSubmatch(m.Comments.Reference)
	if match == nil {
		return "", 0, false
	}
	line, err := strconv.Atoi(match[2])
	if err != nil {
		return "", 0, false
	}
	return match[1], line, true
}

// CompareReference orders messages by the file and line of their first
// reference, then by msgid. Messages without a reference come first.
func CompareReference(a, b *Message) int {
	fileA, lineA, okA := firstReference(a)
	fileB, lineB, okB := firstReference(b)

	switch {
	case !okA && okB:
		return -1
	case okA && !okB:
		return 1
	}

	if n := strings.Compare(fileA, fileB); n != 0 {
		return n
	}
	if lineA != lineB {
		if lineA < lineB {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

// Sort orders msgs in place with CompareReference.
func Sort(msgs []*Message) {
	slices.SortStableFunc(msgs, CompareReference)
}
