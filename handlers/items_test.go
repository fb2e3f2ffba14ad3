package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotebuilder/quote"
	"quotebuilder/testhelpers"
)

func decodeQuote(t *testing.T, rec *httptest.ResponseRecorder) quote.Quote {
	t.Helper()
	var resp struct {
		Quote quote.Quote `json:"quote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Quote
}

func TestHandleItemAdd(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPost, "/", "", map[string]string{"id": id, "sectionIdx": "0"})
	rec := httptest.NewRecorder()

	if err := HandleItemAdd(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	q := decodeQuote(t, rec)
	if len(q.Sections[0].Items) != 2 {
		t.Fatalf("items = %d, want 2", len(q.Sections[0].Items))
	}
	added := q.Sections[0].Items[1]
	if added.Quantity != 1 {
		t.Errorf("new item quantity = %v, want 1", added.Quantity)
	}
}

func TestHandleItemAdd_BadSection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPost, "/", "", map[string]string{"id": id, "sectionIdx": "99"})
	rec := httptest.NewRecorder()

	HandleItemAdd(s)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleItemUpdate_PriceRecomputesSummary(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPut, "/", `{"field":"unitPrice","value":"80"}`,
		map[string]string{"id": id, "sectionIdx": "0", "itemIdx": "0"})
	rec := httptest.NewRecorder()

	if err := HandleItemUpdate(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	q := decodeQuote(t, rec)
	if q.Summary.TotalDirectCost != 160 {
		t.Errorf("TotalDirectCost = %v, want 160", q.Summary.TotalDirectCost)
	}
	if q.Summary.Total != 179.2 {
		t.Errorf("Total = %v, want 179.2", q.Summary.Total)
	}
}

func TestHandleItemUpdate_GarbledNumberCoercesToZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPut, "/", `{"field":"unitPrice","value":"abc"}`,
		map[string]string{"id": id, "sectionIdx": "0", "itemIdx": "0"})
	rec := httptest.NewRecorder()

	HandleItemUpdate(s)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	q := decodeQuote(t, rec)
	if q.Sections[0].Items[0].UnitPrice != 0 {
		t.Errorf("unit price = %v, want 0 after coercion", q.Sections[0].Items[0].UnitPrice)
	}
	if q.Summary.TotalDirectCost != 0 {
		t.Errorf("TotalDirectCost = %v, want 0", q.Summary.TotalDirectCost)
	}
}

func TestHandleItemUpdate_UnknownField(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPut, "/", `{"field":"color","value":"teal"}`,
		map[string]string{"id": id, "sectionIdx": "0", "itemIdx": "0"})
	rec := httptest.NewRecorder()

	HandleItemUpdate(s)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleItemDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodDelete, "/", "", map[string]string{"id": id, "sectionIdx": "0", "itemIdx": "0"})
	rec := httptest.NewRecorder()

	if err := HandleItemDelete(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	q := decodeQuote(t, rec)
	if len(q.Sections[0].Items) != 0 {
		t.Errorf("items = %d, want 0", len(q.Sections[0].Items))
	}
	if q.Summary.Total != 0 {
		t.Errorf("summary total = %v, want 0", q.Summary.Total)
	}
}
