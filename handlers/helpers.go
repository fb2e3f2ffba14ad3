// Package handlers wires the quote editing, export and send operations
// onto the HTTP surface.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/store"
)

// pathIndex parses a zero-based index path segment. Returns -1 for
// missing or malformed values; the quote operations reject -1 with
// their own range check.
func pathIndex(e *core.RequestEvent, name string) int {
	raw := e.Request.PathValue(name)
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return -1
	}
	return idx
}

// writeOpError maps a quote operation error onto an HTTP response.
// Index errors become 404 because the addressed element does not
// exist; everything else is a malformed request.
func writeOpError(e *core.RequestEvent, err error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, quote.ErrIndexOutOfRange) {
		return e.JSON(http.StatusNotFound, map[string]any{"error": err.Error()})
	}
	return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
}

// respondQuote returns the current state of the quote, summary included,
// so the client never recomputes totals itself.
func respondQuote(e *core.RequestEvent, s *store.Store, id string) error {
	q, ok := s.Get(id)
	if !ok {
		return e.JSON(http.StatusNotFound, map[string]any{"error": "quote not found"})
	}
	return e.JSON(http.StatusOK, map[string]any{"id": id, "quote": q})
}

// mutateQuote runs a quote operation under the store lock and responds
// with the refreshed quote state, or the mapped operation error.
func mutateQuote(e *core.RequestEvent, s *store.Store, id string, fn func(q *quote.Quote) error) error {
	if err := s.Update(id, fn); err != nil {
		return writeOpError(e, err)
	}
	return respondQuote(e, s, id)
}
