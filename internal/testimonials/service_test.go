package testimonials

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	mu    sync.Mutex
	items map[string]Testimonial
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Testimonial)}
}

func (f *fakeRepo) Insert(_ context.Context, item Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return Testimonial{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) ListPublic(_ context.Context, filter ListFilter) ([]Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Testimonial, 0)
	for _, item := range f.items {
		if !item.Published {
			continue
		}
		if filter.Featured != nil && item.Featured != *filter.Featured {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) ListAdmin(_ context.Context, _, _ int64) ([]Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Testimonial, 0, len(f.items))
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

func (f *fakeRepo) Replace(_ context.Context, id string, item Testimonial) error {
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
		ReviewerName: "  Sarah M.  ",
		Rating:       5,
		ReviewText:   "Thorough and on time.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if item.ReviewerName != "Sarah M." {
		t.Errorf("reviewer name not trimmed: %q", item.ReviewerName)
	}
	if !item.Published {
		t.Error("expected new testimonial to default to published")
	}
	if item.Featured || item.Verified {
		t.Error("expected featured and verified to default to false")
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
}

func TestUpdatePreservesFlagsWhenOmitted(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	created, err := m.Create(context.Background(), UpsertRequest{
		ReviewerName: "Mike R.",
		Rating:       4,
		ReviewText:   "Found issues the seller never disclosed.",
		Featured:     boolPtr(true),
		Verified:     boolPtr(true),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := m.Update(context.Background(), created.ID, UpsertRequest{
		ReviewerName: "Mike R.",
		Rating:       5,
		ReviewText:   "Found issues the seller never disclosed. Highly recommend.",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !updated.Featured || !updated.Verified {
		t.Error("expected featured and verified flags to survive an update that omits them")
	}
	if updated.Rating != 5 {
		t.Errorf("rating = %d, want 5", updated.Rating)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected created_at to be preserved")
	}
}

func TestPublicListFilters(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	if _, err := m.Create(context.Background(), UpsertRequest{
		ReviewerName: "A", Rating: 5, ReviewText: "x", Featured: boolPtr(true),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(context.Background(), UpsertRequest{
		ReviewerName: "B", Rating: 4, ReviewText: "y",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(context.Background(), UpsertRequest{
		ReviewerName: "C", Rating: 3, ReviewText: "z", Published: boolPtr(false),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := m.ListPublic(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("public list length = %d, want 2", len(all))
	}

	featured, err := m.ListPublic(context.Background(), ListFilter{Featured: boolPtr(true)})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(featured) != 1 || featured[0].ReviewerName != "A" {
		t.Fatalf("featured list = %+v, want only reviewer A", featured)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	_, err := m.Update(context.Background(), "missing", UpsertRequest{
		ReviewerName: "X", Rating: 1, ReviewText: "n/a",
	})
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := m.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("delete err = %v, want ErrNotFound", err)
	}
}
