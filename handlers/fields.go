package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
	"quotebuilder/store"
)

// HandleHeaderUpdate replaces the quote header block.
func HandleHeaderUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var h quote.Header
		if err := e.BindBody(&h); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.SetHeader(h)
			return nil
		})
	}
}

// HandleIntroductionUpdate replaces the introduction block. Only the
// software variant renders it, but the data is accepted for both.
func HandleIntroductionUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var intro quote.Introduction
		if err := e.BindBody(&intro); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.SetIntroduction(intro)
			return nil
		})
	}
}

// HandlePaymentUpdate replaces the payment info block.
func HandlePaymentUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var p quote.PaymentInfo
		if err := e.BindBody(&p); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.SetPaymentInfo(p)
			return nil
		})
	}
}

// HandleFooterUpdate replaces the footer contact block.
func HandleFooterUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var f quote.FooterInfo
		if err := e.BindBody(&f); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.SetFooterInfo(f)
			return nil
		})
	}
}

// HandleTaxRateUpdate sets the global tax rate and recomputes the
// summary. Negative rates clamp to zero; there is no upper bound.
func HandleTaxRateUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		body := struct {
			Percent float64 `json:"percent"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		return mutateQuote(e, s, id, func(q *quote.Quote) error {
			q.SetGlobalTaxRate(body.Percent)
			return nil
		})
	}
}
