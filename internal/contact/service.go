package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"properly-backend/internal/notifications"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("submission not found")
)

type Notifier interface {
	Send(ctx context.Context, payload notifications.Payload) notifications.Result
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Submission, error) {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = DefaultSource
	}

	now := time.Now().In(s.location)
	item := Submission{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Service:   strings.TrimSpace(req.Service),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Source:    source,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Submission{}, err
	}
	return item, nil
}

// Notify forwards the submission to the CRM webhook. The result only matters
// to the caller's log; the submission is already persisted.
func (s *Service) Notify(ctx context.Context, item Submission) notifications.Result {
	if s.notifier == nil {
		return notifications.Result{Success: true}
	}
	payload := notifications.Payload{
		Name:      item.Name,
		Email:     item.Email,
		Phone:     item.Phone,
		Service:   item.Service,
		Message:   item.Message,
		Source:    item.Source,
		Subject:   item.Subject,
		Timestamp: item.CreatedAt.UTC().Format(time.RFC3339),
	}
	return s.notifier.Send(ctx, payload)
}

func (s *Service) GetByID(ctx context.Context, id string) (Submission, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return item, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter ListFilter, limit, offset int64) ([]Submission, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Submission, error) {
	id = strings.TrimSpace(id)
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return Submission{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
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
