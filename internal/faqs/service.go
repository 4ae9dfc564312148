package faqs

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("faq not found")

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

func (m *Manager) Create(ctx context.Context, req UpsertRequest) (FAQ, error) {
	now := time.Now().In(m.location)
	item := FAQ{
		ID:        primitive.NewObjectID().Hex(),
		Question:  strings.TrimSpace(req.Question),
		Answer:    strings.TrimSpace(req.Answer),
		Category:  strings.ToLower(strings.TrimSpace(req.Category)),
		Published: req.Published == nil || *req.Published,
		SortOrder: intOrZero(req.SortOrder),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.repo.Insert(ctx, item); err != nil {
		return FAQ{}, err
	}
	return item, nil
}

func (m *Manager) Update(ctx context.Context, id string, req UpsertRequest) (FAQ, error) {
	existing, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return FAQ{}, ErrNotFound
		}
		return FAQ{}, err
	}

	published := existing.Published
	if req.Published != nil {
		published = *req.Published
	}
	sortOrder := existing.SortOrder
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	item := FAQ{
		ID:        existing.ID,
		Question:  strings.TrimSpace(req.Question),
		Answer:    strings.TrimSpace(req.Answer),
		Category:  strings.ToLower(strings.TrimSpace(req.Category)),
		Published: published,
		SortOrder: sortOrder,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().In(m.location),
	}

	if err := m.repo.Replace(ctx, id, item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return FAQ{}, ErrNotFound
		}
		return FAQ{}, err
	}
	return item, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (m *Manager) ListPublic(ctx context.Context, category string) ([]FAQ, error) {
	return m.repo.ListPublic(ctx, strings.ToLower(strings.TrimSpace(category)))
}

func (m *Manager) ListAdmin(ctx context.Context, limit, offset int64) ([]FAQ, int64, error) {
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

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
