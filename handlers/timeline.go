package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/store"
)

// HandleTimelineAdd appends an empty event to the project timeline.
func HandleTimelineAdd(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.AddTimelineEvent()
			return nil
		})
	}
}

// HandleTimelineUpdate replaces the event at the given index.
func HandleTimelineUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		idx := pathIndex(e, "eventIdx")

		var ev quote.TimelineEvent
		if err := e.BindBody(&ev); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.UpdateTimelineEvent(idx, ev)
		})
	}
}

// HandleTimelineDelete removes the event at the given index.
func HandleTimelineDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		idx := pathIndex(e, "eventIdx")

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.RemoveTimelineEvent(idx)
		})
	}
}
