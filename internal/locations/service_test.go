package locations

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	mu    sync.Mutex
	items map[string]Location
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Location)}
}

func (f *fakeRepo) Insert(_ context.Context, item Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.Slug == item.Slug {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return Location{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string, publishedOnly bool) (Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.Slug != slug {
			continue
		}
		if publishedOnly && !item.Published {
			break
		}
		return item, nil
	}
	return Location{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) ListPublic(_ context.Context) ([]Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Location, 0)
	for _, item := range f.items {
		if item.Published {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAdmin(_ context.Context, _, _ int64) ([]Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Location, 0, len(f.items))
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

func (f *fakeRepo) Replace(_ context.Context, id string, item Location) error {
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

func cityRequest(city string) UpsertRequest {
	return UpsertRequest{
		City:        city,
		State:       "fl",
		Description: "Service area description.",
	}
}

func TestCreateDerivesSlugAndNormalizesState(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	item, err := m.Create(context.Background(), cityRequest("Wesley Chapel"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if item.Slug != "wesley-chapel" {
		t.Errorf("slug = %q, want wesley-chapel", item.Slug)
	}
	if item.State != "FL" {
		t.Errorf("state = %q, want FL", item.State)
	}
	if !item.Published {
		t.Error("expected new location to default to published")
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	if _, err := m.Create(context.Background(), cityRequest("Tampa")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(context.Background(), cityRequest("Tampa")); err != ErrSlugTaken {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestUpdateKeepsSlugWhenOmitted(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	created, err := m.Create(context.Background(), cityRequest("Odessa"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := cityRequest("Odessa")
	req.Neighborhoods = []string{" Starkey Ranch ", ""}
	updated, err := m.Update(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Slug != created.Slug {
		t.Errorf("slug = %q, want %q", updated.Slug, created.Slug)
	}
	if len(updated.Neighborhoods) != 1 || updated.Neighborhoods[0] != "Starkey Ranch" {
		t.Errorf("neighborhoods = %+v, want trimmed non-empty entries", updated.Neighborhoods)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected created_at to be preserved")
	}
}

func TestGetPublicBySlugHidesUnpublished(t *testing.T) {
	m := NewManager(newFakeRepo(), time.UTC)

	req := cityRequest("Lutz")
	req.Published = boolPtr(false)
	if _, err := m.Create(context.Background(), req); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.GetPublicBySlug(context.Background(), "lutz"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
