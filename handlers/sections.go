package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/store"
)

// HandleSectionAdd appends an empty section to the quote.
func HandleSectionAdd(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.AddSection()
			return nil
		})
	}
}

// HandleSectionRename sets the name of an existing section.
func HandleSectionRename(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		sectionIdx := pathIndex(e, "sectionIdx")

		body := struct {
			Name string `json:"name"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.RenameSection(sectionIdx, body.Name)
		})
	}
}

// HandleSectionDelete removes a section and all its items, refreshing
// the summary.
func HandleSectionDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		sectionIdx := pathIndex(e, "sectionIdx")

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			return q.RemoveSection(sectionIdx)
		})
	}
}
