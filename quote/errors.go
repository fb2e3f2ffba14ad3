package quote

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIndexOutOfRange is returned by every indexed operation when the
// section or item index does not exist. The aggregate is left untouched.
var ErrIndexOutOfRange = errors.New("index out of range")

func (q *Quote) sectionAt(sectionIdx int) (*Section, error) {
	if sectionIdx < 0 || sectionIdx >= len(q.Sections) {
		return nil, fmt.Errorf("section %d: %w", sectionIdx, ErrIndexOutOfRange)
	}
	return &q.Sections[sectionIdx], nil
}

func (q *Quote) itemAt(sectionIdx, itemIdx int) (*LineItem, error) {
	sec, err := q.sectionAt(sectionIdx)
	if err != nil {
		return nil, err
	}
	if itemIdx < 0 || itemIdx >= len(sec.Items) {
		return nil, fmt.Errorf("section %d item %d: %w", sectionIdx, itemIdx, ErrIndexOutOfRange)
	}
	return &sec.Items[itemIdx], nil
}

// coerceAmount parses a numeric field value. Malformed input becomes 0
// instead of an error, and negative values are clamped to 0, so a
// half-typed amount never fails an edit.
func coerceAmount(value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
