package locations

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"properly-backend/internal/utils"
)

var (
	ErrNotFound  = errors.New("location not found")
	ErrSlugTaken = errors.New("location slug already in use")
)

// Manager implements the service-area catalog operations on top of a
// Repository.
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

func (m *Manager) Create(ctx context.Context, req UpsertRequest) (Location, error) {
	now := time.Now().In(m.location)

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.City)
	}

	item := Location{
		ID:              primitive.NewObjectID().Hex(),
		City:            strings.TrimSpace(req.City),
		State:           strings.ToUpper(strings.TrimSpace(req.State)),
		Slug:            slug,
		County:          strings.TrimSpace(req.County),
		Description:     strings.TrimSpace(req.Description),
		Neighborhoods:   trimAll(req.Neighborhoods),
		CommonIssues:    trimAll(req.CommonIssues),
		MetaTitle:       strings.TrimSpace(req.MetaTitle),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
		Published:       req.Published == nil || *req.Published,
		SortOrder:       intOrZero(req.SortOrder),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := m.repo.Insert(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Location{}, ErrSlugTaken
		}
		return Location{}, err
	}
	return item, nil
}

func (m *Manager) Update(ctx context.Context, id string, req UpsertRequest) (Location, error) {
	existing, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Location{}, ErrNotFound
		}
		return Location{}, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = existing.Slug
	}

	published := existing.Published
	if req.Published != nil {
		published = *req.Published
	}
	sortOrder := existing.SortOrder
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	item := Location{
		ID:              existing.ID,
		City:            strings.TrimSpace(req.City),
		State:           strings.ToUpper(strings.TrimSpace(req.State)),
		Slug:            slug,
		County:          strings.TrimSpace(req.County),
		Description:     strings.TrimSpace(req.Description),
		Neighborhoods:   trimAll(req.Neighborhoods),
		CommonIssues:    trimAll(req.CommonIssues),
		MetaTitle:       strings.TrimSpace(req.MetaTitle),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
		Published:       published,
		SortOrder:       sortOrder,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       time.Now().In(m.location),
	}

	if err := m.repo.Replace(ctx, id, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Location{}, ErrSlugTaken
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Location{}, ErrNotFound
		}
		return Location{}, err
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

func (m *Manager) GetPublicBySlug(ctx context.Context, slug string) (Location, error) {
	item, err := m.repo.GetBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Location{}, ErrNotFound
		}
		return Location{}, err
	}
	return item, nil
}

func (m *Manager) ListPublic(ctx context.Context) ([]Location, error) {
	return m.repo.ListPublic(ctx)
}

func (m *Manager) ListAdmin(ctx context.Context, limit, offset int64) ([]Location, int64, error) {
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
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
