package faqs

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	mu    sync.Mutex
	items map[string]FAQ
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]FAQ)}
}

func (f *fakeRepo) Insert(_ context.Context, item FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return FAQ{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) ListPublic(_ context.Context, category string) ([]FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FAQ, 0)
	for _, item := range f.items {
		if !item.Published {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) ListAdmin(_ context.Context, _, _ int64) ([]FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FAQ, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) CountAdmin(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

func (f *fakeRepo) Replace(_ context.Context, id string, item FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.items[id] = item
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.items, id)
	return nil
}

func boolPtr(v bool) *bool { return &v }

func TestCreateDefaults(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	item, err := m.Create(context.Background(), UpsertRequest{
		Question: "  How long does an inspection take?  ",
		Answer:   "Two to three hours for most homes.",
		Category: "General",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if strings.HasPrefix(item.Question, " ") || strings.HasSuffix(item.Question, " ") {
		t.Errorf("question not trimmed: %q", item.Question)
	}
	if item.Category != "general" {
		t.Errorf("category = %q, want lowercased", item.Category)
	}
	if !item.Published {
		t.Error("expected new faq to default to published")
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
}

func TestUpdatePreservesFieldsWhenOmitted(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	created, err := m.Create(context.Background(), UpsertRequest{
		Question:  "Do you inspect crawl spaces?",
		Answer:    "Yes, where access is safe.",
		Published: boolPtr(false),
		SortOrder: intPtr(3),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := m.Update(context.Background(), created.ID, UpsertRequest{
		Question: "Do you inspect crawl spaces?",
		Answer:   "Yes, whenever access is safe and clear.",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Published {
		t.Error("expected published flag to survive an update that omits it")
	}
	if updated.SortOrder != 3 {
		t.Errorf("sort_order = %d, want 3", updated.SortOrder)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected created_at to be preserved")
	}
}

func TestPublicListFiltersCategory(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	if _, err := m.Create(context.Background(), UpsertRequest{
		Question: "Q1", Answer: "A1", Category: "pricing",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(context.Background(), UpsertRequest{
		Question: "Q2", Answer: "A2", Category: "process",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(context.Background(), UpsertRequest{
		Question: "Q3", Answer: "A3", Category: "pricing", Published: boolPtr(false),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := m.ListPublic(context.Background(), " Pricing ")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Question != "Q1" {
		t.Fatalf("filtered list = %+v, want only Q1", items)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	_, err := m.Update(context.Background(), "missing", UpsertRequest{Question: "Q", Answer: "A"})
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := m.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("delete err = %v, want ErrNotFound", err)
	}
}

func intPtr(v int) *int { return &v }
