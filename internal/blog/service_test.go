package blog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items map[string]Post
	slugs map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items: make(map[string]Post),
		slugs: make(map[string]string),
	}
}

func (f *fakeRepo) Create(ctx context.Context, item Post) error {
	if _, taken := f.slugs[item.Slug]; taken {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	f.items[item.ID] = item
	f.slugs[item.Slug] = item.ID
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Post, error) {
	item, ok := f.items[id]
	if !ok {
		return Post{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (Post, error) {
	id, ok := f.slugs[slug]
	if !ok {
		return Post{}, mongo.ErrNoDocuments
	}
	item := f.items[id]
	if publishedOnly && !item.Published {
		return Post{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (Post, error) {
	item, ok := f.items[id]
	if !ok {
		return Post{}, mongo.ErrNoDocuments
	}
	if slug, ok := set["slug"].(string); ok && slug != item.Slug {
		if _, taken := f.slugs[slug]; taken {
			return Post{}, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
		delete(f.slugs, item.Slug)
		f.slugs[slug] = id
		item.Slug = slug
	}
	if v, ok := set["title"].(string); ok {
		item.Title = v
	}
	if v, ok := set["excerpt"].(string); ok {
		item.Excerpt = v
	}
	if v, ok := set["content"].(string); ok {
		item.Content = v
	}
	if v, ok := set["category"].(string); ok {
		item.Category = v
	}
	if v, ok := set["published"].(bool); ok {
		item.Published = v
	}
	if v, ok := set["featured"].(bool); ok {
		item.Featured = v
	}
	if v, ok := set["published_at"].(time.Time); ok {
		item.PublishedAt = &v
	}
	if v, ok := set["updated_at"].(time.Time); ok {
		item.UpdatedAt = v
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	item, ok := f.items[id]
	if !ok {
		return false, nil
	}
	delete(f.slugs, item.Slug)
	delete(f.items, id)
	return true, nil
}

func (f *fakeRepo) ListPublic(ctx context.Context, filter PublicListFilter, limit, offset int64) ([]Post, error) {
	items := make([]Post, 0)
	for _, item := range f.items {
		if !item.Published {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && item.Featured != *filter.Featured {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Post, error) {
	items := make([]Post, 0)
	for _, item := range f.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Published != nil && item.Published != *filter.Published {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) CountAdmin(ctx context.Context, filter AdminListFilter) (int64, error) {
	items, _ := f.ListAdmin(ctx, filter, 0, 0)
	return int64(len(items)), nil
}

func boolPtr(b bool) *bool { return &b }

func draftRequest(title string) UpsertRequest {
	return UpsertRequest{
		Title:    title,
		Excerpt:  "excerpt",
		Content:  "content",
		Category: "maintenance",
	}
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	item, err := svc.Create(context.Background(), draftRequest("What's In A 4-Point Inspection?"), "author-1")
	require.NoError(t, err)
	assert.Equal(t, "whats-in-a-4-point-inspection", item.Slug)
	assert.Equal(t, "author-1", item.AuthorID)
	assert.False(t, item.Published)
	assert.Nil(t, item.PublishedAt)
}

func TestCreatePublishedStampsPublishedAt(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	req := draftRequest("Roof Basics")
	req.Published = boolPtr(true)
	item, err := svc.Create(context.Background(), req, "")
	require.NoError(t, err)
	require.NotNil(t, item.PublishedAt)
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	_, err := svc.Create(context.Background(), draftRequest("Roof Basics"), "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), draftRequest("Roof Basics"), "")
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestPublishStampsOnceAndNeverClears(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), draftRequest("Roof Basics"), "")
	require.NoError(t, err)
	require.Nil(t, item.PublishedAt)

	// First publish stamps.
	req := draftRequest("Roof Basics")
	req.Published = boolPtr(true)
	published, err := svc.Update(context.Background(), item.ID, req)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Unpublish leaves the stamp alone.
	req.Published = boolPtr(false)
	unpublished, err := svc.Update(context.Background(), item.ID, req)
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
	require.NotNil(t, unpublished.PublishedAt)
	assert.Equal(t, firstStamp, *unpublished.PublishedAt)

	// Republish keeps the original timestamp.
	req.Published = boolPtr(true)
	republished, err := svc.Update(context.Background(), item.ID, req)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstStamp, *republished.PublishedAt)
}

func TestListPublicExcludesDrafts(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	_, err := svc.Create(context.Background(), draftRequest("Draft Post"), "")
	require.NoError(t, err)

	req := draftRequest("Live Post")
	req.Published = boolPtr(true)
	_, err = svc.Create(context.Background(), req, "")
	require.NoError(t, err)

	items, err := svc.ListPublic(context.Background(), PublicListFilter{}, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Published)
	assert.Equal(t, "Live Post", items[0].Title)
}

func TestGetPublicBySlugHidesDrafts(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	_, err := svc.Create(context.Background(), draftRequest("Draft Post"), "")
	require.NoError(t, err)

	_, err = svc.GetPublicBySlug(context.Background(), "draft-post")
	assert.ErrorIs(t, err, ErrNotFound)
}
