package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotebuilder/testhelpers"
)

func TestHandleHeaderUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	body := `{"projectName":"Edificio Central","clientName":"ACME","address":"Zona 1","proposalType":"Obra gris","date":"2025-07-01"}`
	req := newJSONRequest(http.MethodPut, "/", body, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandleHeaderUpdate(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	q := decodeQuote(t, rec)
	if q.Header.ProjectName != "Edificio Central" {
		t.Errorf("project name = %q", q.Header.ProjectName)
	}
	if q.Header.Date != "2025-07-01" {
		t.Errorf("date = %q", q.Header.Date)
	}
}

func TestHandleTaxRateUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPut, "/", `{"percent":5}`, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandleTaxRateUpdate(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	q := decodeQuote(t, rec)
	if q.TaxRatePercent != 5 {
		t.Errorf("tax rate = %v, want 5", q.TaxRatePercent)
	}
	if q.Summary.TaxAmount != 5 {
		t.Errorf("tax amount = %v, want 5", q.Summary.TaxAmount)
	}
	if q.Summary.Total != 105 {
		t.Errorf("total = %v, want 105", q.Summary.Total)
	}
}

func TestHandleTaxRateUpdate_NegativeClampsToZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	req := newJSONRequest(http.MethodPut, "/", `{"percent":-3}`, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	HandleTaxRateUpdate(s)(newTestRequestEvent(app, req, rec))

	q := decodeQuote(t, rec)
	if q.TaxRatePercent != 0 {
		t.Errorf("tax rate = %v, want 0", q.TaxRatePercent)
	}
	if q.Summary.Total != 100 {
		t.Errorf("total = %v, want 100", q.Summary.Total)
	}
}

func TestHandlePaymentUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	body := `{"method":"Cheque","bankDetails":"BI 001-002"}`
	req := newJSONRequest(http.MethodPut, "/", body, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandlePaymentUpdate(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	q := decodeQuote(t, rec)
	if q.PaymentInfo.Method != "Cheque" {
		t.Errorf("method = %q", q.PaymentInfo.Method)
	}
	if q.PaymentInfo.BankDetails != "BI 001-002" {
		t.Errorf("bank details = %q", q.PaymentInfo.BankDetails)
	}
}

func TestHandleFooterUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	body := `{"phone":"5555-0000","email":"ventas@example.com","address":"Zona 4"}`
	req := newJSONRequest(http.MethodPut, "/", body, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandleFooterUpdate(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	q := decodeQuote(t, rec)
	if q.FooterInfo.Email != "ventas@example.com" {
		t.Errorf("footer email = %q", q.FooterInfo.Email)
	}
}

func TestHandleIntroductionUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s, id, _ := newStoredQuote(t)

	body := `{"overview":"Resumen","objectives":"Objetivos","benefits":"Beneficios"}`
	req := newJSONRequest(http.MethodPut, "/", body, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	if err := HandleIntroductionUpdate(s)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	q := decodeQuote(t, rec)
	if q.Introduction.Overview != "Resumen" {
		t.Errorf("overview = %q", q.Introduction.Overview)
	}
}
