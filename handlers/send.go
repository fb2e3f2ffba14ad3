package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// HandleQuoteSend renders the quote as a PDF and mails it to the
// requested recipient. While a send is in flight for a quote, further
// send requests for the same quote are rejected with 409.
func HandleQuoteSend(app *pocketbase.PocketBase, s *store.Store, sender services.DocumentSender) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		body := struct {
			Email string `json:"email"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}
		if body.Email == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing recipient email"})
		}

		q, ok := s.Get(id)
		if !ok {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "quote not found"})
		}

		if !s.BeginSend(id) {
			return e.JSON(http.StatusConflict, map[string]any{"error": "a send is already in progress for this quote"})
		}
		defer s.EndSend(id)

		brand, _ := services.LoadBrandProfile(app, q.Variant)
		data := services.BuildQuoteExportData(q, brand)

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("send: failed to generate PDF for %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to generate document"})
		}

		filename := services.QuoteFilename(q, "pdf")
		if err := sender.Send(e.Request.Context(), pdfBytes, filename, body.Email); err != nil {
			log.Printf("send: delivery of %s to %s failed: %v", id, body.Email, err)
			return e.JSON(http.StatusBadGateway, map[string]any{"error": "failed to send document"})
		}

		log.Printf("send: delivered %s to %s", filename, body.Email)
		return e.JSON(http.StatusOK, map[string]any{"sent": filename, "to": body.Email})
	}
}
