package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/store"
)

// HandleItemAdd appends a default line item to a section.
func HandleItemAdd(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		sectionIdx := pathIndex(e, "sectionIdx")

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.AddLineItem(sectionIdx)
		})
	}
}

// HandleItemUpdate writes one field of a line item. The value always
// travels as a string; numeric fields are coerced by the quote itself
// so a garbled amount silently becomes zero instead of failing the
// edit.
func HandleItemUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		sectionIdx := pathIndex(e, "sectionIdx")
		itemIdx := pathIndex(e, "itemIdx")

		body := struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.UpdateLineItem(sectionIdx, itemIdx, body.Field, body.Value)
		})
	}
}

// HandleItemDelete removes a line item and refreshes the summary.
func HandleItemDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		sectionIdx := pathIndex(e, "sectionIdx")
		itemIdx := pathIndex(e, "itemIdx")

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.RemoveLineItem(sectionIdx, itemIdx)
		})
	}
}
