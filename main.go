package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/collections"
	"quotebuilder/handlers"
	"quotebuilder/services"
	"quotebuilder/store"
)

func main() {
	app := pocketbase.New()
	quotes := store.New()
	sender := services.NewMailSender(app)

	// Create collections and seed brand profiles on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quote lifecycle ──────────────────────────────────────
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app, quotes))
		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteView(quotes))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(quotes))

		// ── Sections ─────────────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/sections", handlers.HandleSectionAdd(quotes))
		se.Router.PUT("/api/quotes/{id}/sections/{sectionIdx}", handlers.HandleSectionRename(quotes))
		se.Router.DELETE("/api/quotes/{id}/sections/{sectionIdx}", handlers.HandleSectionDelete(quotes))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/sections/{sectionIdx}/items", handlers.HandleItemAdd(quotes))
		se.Router.PUT("/api/quotes/{id}/sections/{sectionIdx}/items/{itemIdx}", handlers.HandleItemUpdate(quotes))
		se.Router.DELETE("/api/quotes/{id}/sections/{sectionIdx}/items/{itemIdx}", handlers.HandleItemDelete(quotes))

		// ── Document blocks ──────────────────────────────────────
		se.Router.PUT("/api/quotes/{id}/header", handlers.HandleHeaderUpdate(quotes))
		se.Router.PUT("/api/quotes/{id}/introduction", handlers.HandleIntroductionUpdate(quotes))
		se.Router.PUT("/api/quotes/{id}/payment", handlers.HandlePaymentUpdate(quotes))
		se.Router.PUT("/api/quotes/{id}/footer", handlers.HandleFooterUpdate(quotes))
		se.Router.PUT("/api/quotes/{id}/tax-rate", handlers.HandleTaxRateUpdate(quotes))

		// ── Terms and conditions ─────────────────────────────────
		se.Router.POST("/api/quotes/{id}/terms", handlers.HandleTermAdd(quotes))
		se.Router.PUT("/api/quotes/{id}/terms/{termIdx}", handlers.HandleTermUpdate(quotes))
		se.Router.DELETE("/api/quotes/{id}/terms/{termIdx}", handlers.HandleTermDelete(quotes))

		// ── Timeline ─────────────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/timeline", handlers.HandleTimelineAdd(quotes))
		se.Router.PUT("/api/quotes/{id}/timeline/{eventIdx}", handlers.HandleTimelineUpdate(quotes))
		se.Router.DELETE("/api/quotes/{id}/timeline/{eventIdx}", handlers.HandleTimelineDelete(quotes))

		// ── Export and delivery ──────────────────────────────────
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app, quotes))
		se.Router.GET("/api/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app, quotes))
		se.Router.POST("/api/quotes/{id}/send", handlers.HandleQuoteSend(app, quotes, sender))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
