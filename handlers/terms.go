package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/store"
)

// HandleTermAdd appends a term to the terms and conditions list.
func HandleTermAdd(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		body := struct {
			Text string `json:"text"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.AddTerm(body.Text)
			return nil
		})
	}
}

// HandleTermUpdate rewrites the term at the given index.
func HandleTermUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		idx := pathIndex(e, "termIdx")

		body := struct {
			Text string `json:"text"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.UpdateTerm(idx, body.Text)
		})
	}
}

// HandleTermDelete removes the term at the given index.
func HandleTermDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		idx := pathIndex(e, "termIdx")

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.RemoveTerm(idx)
		})
	}
}
