package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/services"
	"quotebuilder/store"
)

// HandleQuoteCreate creates a new quote for the requested variant,
// seeded from the variant's brand profile. Unrecognized variant names
// fall back to the construction variant.
func HandleQuoteCreate(app *pocketbase.PocketBase, s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := struct {
			Variant string `json:"variant"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		variant := quote.ParseVariant(body.Variant)
		_, defaults := services.LoadBrandProfile(app, variant)

		q := quote.New(variant, defaults)
		id := s.Create(q)
		log.Printf("quote_create: created %s (%s)", id, variant)

		return e.JSON(http.StatusCreated, map[string]any{"id": id, "quote": q})
	}
}

// HandleQuoteView returns the full quote state by id.
func HandleQuoteView(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return respondQuote(e, s, e.Request.PathValue("id"))
	}
}

// HandleQuoteDelete discards a quote.
func HandleQuoteDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if !s.Delete(id) {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "quote not found"})
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": id})
	}
}
