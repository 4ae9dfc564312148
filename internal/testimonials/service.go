package testimonials

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("testimonial not found")

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

func (m *Manager) Create(ctx context.Context, req UpsertRequest) (Testimonial, error) {
	now := time.Now().In(m.location)
	item := Testimonial{
		ID:           primitive.NewObjectID().Hex(),
		ReviewerName: strings.TrimSpace(req.ReviewerName),
		Rating:       req.Rating,
		ReviewText:   strings.TrimSpace(req.ReviewText),
		Service:      strings.TrimSpace(req.Service),
		Location:     strings.TrimSpace(req.Location),
		Date:         strings.TrimSpace(req.Date),
		Source:       strings.TrimSpace(req.Source),
		Badge:        strings.TrimSpace(req.Badge),
		Featured:     req.Featured != nil && *req.Featured,
		Verified:     req.Verified != nil && *req.Verified,
		Published:    req.Published == nil || *req.Published,
		SortOrder:    intOrZero(req.SortOrder),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := m.repo.Insert(ctx, item); err != nil {
		return Testimonial{}, err
	}
	return item, nil
}

func (m *Manager) Update(ctx context.Context, id string, req UpsertRequest) (Testimonial, error) {
	existing, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Testimonial{}, ErrNotFound
		}
		return Testimonial{}, err
	}

	featured := existing.Featured
	if req.Featured != nil {
		featured = *req.Featured
	}
	verified := existing.Verified
	if req.Verified != nil {
		verified = *req.Verified
	}
	published := existing.Published
	if req.Published != nil {
		published = *req.Published
	}
	sortOrder := existing.SortOrder
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	item := Testimonial{
		ID:           existing.ID,
		ReviewerName: strings.TrimSpace(req.ReviewerName),
		Rating:       req.Rating,
		ReviewText:   strings.TrimSpace(req.ReviewText),
		Service:      strings.TrimSpace(req.Service),
		Location:     strings.TrimSpace(req.Location),
		Date:         strings.TrimSpace(req.Date),
		Source:       strings.TrimSpace(req.Source),
		Badge:        strings.TrimSpace(req.Badge),
		Featured:     featured,
		Verified:     verified,
		Published:    published,
		SortOrder:    sortOrder,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().In(m.location),
	}

	if err := m.repo.Replace(ctx, id, item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Testimonial{}, ErrNotFound
		}
		return Testimonial{}, err
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

func (m *Manager) ListPublic(ctx context.Context, filter ListFilter) ([]Testimonial, error) {
	return m.repo.ListPublic(ctx, filter)
}

func (m *Manager) ListAdmin(ctx context.Context, limit, offset int64) ([]Testimonial, int64, error) {
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
