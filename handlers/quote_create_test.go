package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotebuilder/quote"
	"quotebuilder/store"
	"quotebuilder/testhelpers"
)

func TestHandleQuoteCreate_Construction(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := store.New()

	req := newJSONRequest(http.MethodPost, "/api/quotes", `{"variant":"construction"}`, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteCreate(app, s)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		ID    string      `json:"id"`
		Quote quote.Quote `json:"quote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response carries no quote id")
	}
	if resp.Quote.Variant != quote.VariantConstruction {
		t.Errorf("variant = %q", resp.Quote.Variant)
	}
	if len(resp.Quote.Sections) != 11 {
		t.Errorf("seeded sections = %d, want 11", len(resp.Quote.Sections))
	}
	if resp.Quote.TaxRatePercent != 12 {
		t.Errorf("seeded tax rate = %v, want 12", resp.Quote.TaxRatePercent)
	}
}

func TestHandleQuoteCreate_UnknownVariantFallsBack(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := store.New()

	req := newJSONRequest(http.MethodPost, "/api/quotes", `{"variant":"catering"}`, nil)
	rec := httptest.NewRecorder()

	if err := HandleQuoteCreate(app, s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Quote quote.Quote `json:"quote"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Quote.Variant != quote.VariantConstruction {
		t.Errorf("fallback variant = %q, want construction", resp.Quote.Variant)
	}
}

func TestHandleQuoteView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodGet, "/api/quotes/"+id, "", map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandleQuoteView(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Quote quote.Quote `json:"quote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Quote.Summary.Total != 112 {
		t.Errorf("summary total = %v, want 112", resp.Quote.Summary.Total)
	}
}

func TestHandleQuoteView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := store.New()

	req := newJSONRequest(http.MethodGet, "/api/quotes/missing", "", map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()

	if err := HandleQuoteView(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleQuoteDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodDelete, "/api/quotes/"+id, "", map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandleQuoteDelete(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if _, ok := s.Get(id); ok {
		t.Error("quote still present after delete")
	}

	rec = httptest.NewRecorder()
	req = newJSONRequest(http.MethodDelete, "/api/quotes/"+id, "", map[string]string{"id": id})
	HandleQuoteDelete(s)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
