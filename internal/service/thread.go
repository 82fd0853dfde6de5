package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anonboard/anonboard/internal/config"
	"github.com/anonboard/anonboard/internal/domain"
	internal_errors "github.com/anonboard/anonboard/internal/errors"
)

type ThreadService interface {
	Create(ctx context.Context, board, text, password string) (primitive.ObjectID, error)
	Recent(ctx context.Context, board string) ([]domain.ThreadListing, error)
	Report(ctx context.Context, board, threadId string) error
	SoftDelete(ctx context.Context, board, threadId, password string) error
}

type ThreadStorage interface {
	InsertThread(ctx context.Context, t domain.Thread) error
	RecentThreads(ctx context.Context, board string, limit int) ([]domain.Thread, error)
	ReportThread(ctx context.Context, board string, id primitive.ObjectID, now string) (int64, error)
	SoftDeleteThread(ctx context.Context, board string, id primitive.ObjectID, password, now string) (int64, error)
}

type Thread struct {
	storage ThreadStorage
	cfg     *config.Config
}

func NewThread(storage ThreadStorage, cfg *config.Config) *Thread {
	return &Thread{storage, cfg}
}

// parseId rejects anything that is not a store-native id (24 hex chars)
// before the store is touched.
func parseId(raw, field string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, internal_errors.Validation("bad " + field)
	}
	return id, nil
}

func (s *Thread) Create(ctx context.Context, board, text, password string) (primitive.ObjectID, error) {
	if text == "" {
		return primitive.NilObjectID, internal_errors.Validation("missing message text")
	}
	thread := domain.NewThread(board, text, password, time.Now())
	if err := s.storage.InsertThread(ctx, thread); err != nil {
		return primitive.NilObjectID, err
	}
	return thread.Id, nil
}

func (s *Thread) Recent(ctx context.Context, board string) ([]domain.ThreadListing, error) {
	threads, err := s.storage.RecentThreads(ctx, board, s.cfg.Public.ThreadsPerPage)
	if err != nil {
		return nil, err
	}
	listings := make([]domain.ThreadListing, 0, len(threads))
	for _, t := range threads {
		listings = append(listings, t.Listing(s.cfg.Public.RepliesPreview))
	}
	return listings, nil
}

func (s *Thread) Report(ctx context.Context, board, threadId string) error {
	id, err := parseId(threadId, "thread_id")
	if err != nil {
		return err
	}
	matched, err := s.storage.ReportThread(ctx, board, id, time.Now().Format(domain.TimeFormat))
	if err != nil {
		return err
	}
	if matched == 0 {
		return internal_errors.NotFound("no thread reported")
	}
	return nil
}

// SoftDelete conflates "wrong password", "no such thread" and "already
// deleted" into one answer; the conditional update only reports that
// nothing matched.
func (s *Thread) SoftDelete(ctx context.Context, board, threadId, password string) error {
	id, err := parseId(threadId, "thread_id")
	if err != nil {
		return err
	}
	matched, err := s.storage.SoftDeleteThread(ctx, board, id, password, time.Now().Format(domain.TimeFormat))
	if err != nil {
		return err
	}
	if matched == 0 {
		return internal_errors.Forbidden()
	}
	return nil
}
