package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"properly-backend/internal/utils"
)

var (
	ErrNotFound  = errors.New("service not found")
	ErrSlugTaken = errors.New("slug already in use")
)

type Manager struct {
	repo     Repository
	location *time.Location
}

func NewManager(repo Repository, location *time.Location) *Manager {
	return &Manager{
		repo:     repo,
		location: location,
	}
}

func (m *Manager) Create(ctx context.Context, req UpsertRequest) (Service, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	now := time.Now().In(m.location)
	item := Service{
		ID:               primitive.NewObjectID().Hex(),
		Name:             strings.TrimSpace(req.Name),
		Slug:             slug,
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		FullDescription:  strings.TrimSpace(req.FullDescription),
		Icon:             strings.TrimSpace(req.Icon),
		Benefits:         trimAll(req.Benefits),
		Process:          trimAll(req.Process),
		Pricing:          strings.TrimSpace(req.Pricing),
		Duration:         strings.TrimSpace(req.Duration),
		MetaTitle:        strings.TrimSpace(req.MetaTitle),
		MetaDescription:  strings.TrimSpace(req.MetaDescription),
		Featured:         req.Featured != nil && *req.Featured,
		Published:        req.Published == nil || *req.Published,
		SortOrder:        intOrZero(req.SortOrder),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := m.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Service{}, ErrSlugTaken
		}
		return Service{}, err
	}
	return item, nil
}

func (m *Manager) Update(ctx context.Context, id string, req UpsertRequest) (Service, error) {
	id = strings.TrimSpace(id)

	existing, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = existing.Slug
	}
	published := existing.Published
	if req.Published != nil {
		published = *req.Published
	}
	featured := existing.Featured
	if req.Featured != nil {
		featured = *req.Featured
	}
	sortOrder := existing.SortOrder
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	set := bson.M{
		"name":              strings.TrimSpace(req.Name),
		"slug":              slug,
		"short_description": strings.TrimSpace(req.ShortDescription),
		"full_description":  strings.TrimSpace(req.FullDescription),
		"icon":              strings.TrimSpace(req.Icon),
		"benefits":          trimAll(req.Benefits),
		"process":           trimAll(req.Process),
		"pricing":           strings.TrimSpace(req.Pricing),
		"duration":          strings.TrimSpace(req.Duration),
		"meta_title":        strings.TrimSpace(req.MetaTitle),
		"meta_description":  strings.TrimSpace(req.MetaDescription),
		"featured":          featured,
		"published":         published,
		"sort_order":        sortOrder,
		"updated_at":        time.Now().In(m.location),
	}

	updated, err := m.repo.Update(ctx, id, set)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Service{}, ErrSlugTaken
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}
	return updated, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	deleted, err := m.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (m *Manager) GetPublicBySlug(ctx context.Context, slug string) (Service, error) {
	item, err := m.repo.GetBySlug(ctx, strings.TrimSpace(slug), true)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}
	return item, nil
}

func (m *Manager) ListPublic(ctx context.Context) ([]Service, error) {
	return m.repo.ListPublic(ctx)
}

func (m *Manager) ListAdmin(ctx context.Context, limit, offset int64) ([]Service, int64, error) {
	items, err := m.repo.ListAdmin(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := m.repo.CountAdmin(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
