package store

import (
	"testing"

	"quotebuilder/quote"
)

func TestCreateAndGet(t *testing.T) {
	s := New()
	id := s.Create(quote.New(quote.VariantConstruction, quote.ConstructionDefaults()))

	if id == "" {
		t.Fatal("expected non-empty id")
	}
	q, ok := s.Get(id)
	if !ok {
		t.Fatal("quote not found after Create")
	}
	if q.Variant != quote.VariantConstruction {
		t.Errorf("variant = %q", q.Variant)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := New()
	id := s.Create(quote.New(quote.VariantConstruction, quote.Defaults{SectionNames: []string{"A"}}))

	snapshot, _ := s.Get(id)
	snapshot.AddLineItem(0)

	live, _ := s.Get(id)
	if len(live.Sections[0].Items) != 0 {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestUpdate(t *testing.T) {
	s := New()
	id := s.Create(quote.New(quote.VariantConstruction, quote.Defaults{SectionNames: []string{"A"}}))

	err := s.Update(id, func(q *quote.Quote) error {
		return q.AddLineItem(0)
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	q, _ := s.Get(id)
	if len(q.Sections[0].Items) != 1 {
		t.Errorf("items = %d, want 1", len(q.Sections[0].Items))
	}

	if err := s.Update("missing", func(q *quote.Quote) error { return nil }); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestDelete(t *testing.T) {
	s := New()
	id := s.Create(quote.New(quote.VariantSoftware, quote.SoftwareDefaults()))

	if !s.Delete(id) {
		t.Error("Delete() = false for existing quote")
	}
	if s.Delete(id) {
		t.Error("Delete() = true for removed quote")
	}
	if _, ok := s.Get(id); ok {
		t.Error("quote still readable after delete")
	}
}

func TestSendFlag(t *testing.T) {
	s := New()
	id := s.Create(quote.New(quote.VariantConstruction, quote.ConstructionDefaults()))

	if !s.BeginSend(id) {
		t.Fatal("first BeginSend() = false")
	}
	if s.BeginSend(id) {
		t.Error("second BeginSend() = true while send in flight")
	}

	s.EndSend(id)
	if !s.BeginSend(id) {
		t.Error("BeginSend() = false after EndSend")
	}
}
