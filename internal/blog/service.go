package blog

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
	ErrNotFound     = errors.New("post not found")
	ErrSlugTaken    = errors.New("slug already in use")
	ErrSlugRequired = errors.New("slug could not be derived from title")
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest, authorID string) (Post, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		return Post{}, ErrSlugRequired
	}

	now := time.Now().In(s.location)
	published := req.Published != nil && *req.Published
	featured := req.Featured != nil && *req.Featured

	item := Post{
		ID:              primitive.NewObjectID().Hex(),
		Title:           strings.TrimSpace(req.Title),
		Slug:            slug,
		Excerpt:         strings.TrimSpace(req.Excerpt),
		Content:         req.Content,
		Category:        strings.TrimSpace(req.Category),
		Tags:            normalizeTags(req.Tags),
		MetaTitle:       strings.TrimSpace(req.MetaTitle),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
		CoverImage:      strings.TrimSpace(req.CoverImage),
		Published:       published,
		Featured:        featured,
		AuthorID:        strings.TrimSpace(authorID),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if published {
		item.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Post{}, ErrSlugTaken
		}
		return Post{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Post, error) {
	id = strings.TrimSpace(id)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
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

	now := time.Now().In(s.location)
	set := bson.M{
		"title":            strings.TrimSpace(req.Title),
		"slug":             slug,
		"excerpt":          strings.TrimSpace(req.Excerpt),
		"content":          req.Content,
		"category":         strings.TrimSpace(req.Category),
		"tags":             normalizeTags(req.Tags),
		"meta_title":       strings.TrimSpace(req.MetaTitle),
		"meta_description": strings.TrimSpace(req.MetaDescription),
		"cover_image":      strings.TrimSpace(req.CoverImage),
		"published":        published,
		"featured":         featured,
		"updated_at":       now,
	}

	// published_at is stamped on the first publish and never cleared or
	// re-stamped: a republished post keeps its original timestamp.
	if published && existing.PublishedAt == nil {
		set["published_at"] = now
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Post{}, ErrSlugTaken
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) GetPublicBySlug(ctx context.Context, slug string) (Post, error) {
	item, err := s.repo.GetBySlug(ctx, strings.TrimSpace(slug), true)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return item, nil
}

func (s *Service) ListPublic(ctx context.Context, filter PublicListFilter, limit, offset int64) ([]Post, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return s.repo.ListPublic(ctx, filter, limit, offset)
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Post, int64, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	items, err := s.repo.ListAdmin(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountAdmin(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
