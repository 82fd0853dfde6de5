package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anonboard/anonboard/internal/domain"
	internal_errors "github.com/anonboard/anonboard/internal/errors"
)

type ReplyService interface {
	Create(ctx context.Context, board, threadId, text, password string) error
	GetThread(ctx context.Context, board, threadId string) (domain.ThreadPage, error)
	Report(ctx context.Context, board, threadId, replyId string) error
	SoftDelete(ctx context.Context, board, threadId, replyId, password string) error
}

type ReplyStorage interface {
	FindThread(ctx context.Context, board string, id primitive.ObjectID) (domain.Thread, bool, error)
	AppendReply(ctx context.Context, board string, threadId primitive.ObjectID, reply domain.Reply, bumpedOn string, bumpedOnInt int64) (int64, error)
	ReportReply(ctx context.Context, board string, threadId, replyId primitive.ObjectID, now string) (int64, error)
	SoftDeleteReply(ctx context.Context, board string, threadId, replyId primitive.ObjectID, password, now string) (int64, error)
}

type Reply struct {
	storage ReplyStorage
}

func NewReply(storage ReplyStorage) *Reply {
	return &Reply{storage}
}

// Create appends a reply and bumps the parent thread. The reply timestamp
// and both bump fields come from the same instant.
func (s *Reply) Create(ctx context.Context, board, threadId, text, password string) error {
	id, err := parseId(threadId, "thread_id")
	if err != nil {
		return err
	}
	if text == "" {
		return internal_errors.Validation("missing message text")
	}
	now := time.Now()
	reply := domain.NewReply(text, password, now)
	matched, err := s.storage.AppendReply(ctx, board, id, reply, now.Format(domain.TimeFormat), now.UnixMilli())
	if err != nil {
		return err
	}
	if matched == 0 {
		return internal_errors.NotFound("no data saved")
	}
	return nil
}

func (s *Reply) GetThread(ctx context.Context, board, threadId string) (domain.ThreadPage, error) {
	id, err := parseId(threadId, "thread_id")
	if err != nil {
		return domain.ThreadPage{}, err
	}
	thread, found, err := s.storage.FindThread(ctx, board, id)
	if err != nil {
		return domain.ThreadPage{}, err
	}
	if !found {
		return domain.ThreadPage{}, internal_errors.NotFound("no thread found")
	}
	return thread.Page(), nil
}

func (s *Reply) Report(ctx context.Context, board, threadId, replyId string) error {
	tid, err := parseId(threadId, "thread_id")
	if err != nil {
		return err
	}
	rid, err := parseId(replyId, "reply_id")
	if err != nil {
		return err
	}
	matched, err := s.storage.ReportReply(ctx, board, tid, rid, time.Now().Format(domain.TimeFormat))
	if err != nil {
		return err
	}
	if matched == 0 {
		return internal_errors.NotFound("no reply reported")
	}
	return nil
}

// SoftDelete redacts a reply in place. A reply already deleted no longer
// matches the filter, so a repeat delete fails the same way a wrong
// password does.
func (s *Reply) SoftDelete(ctx context.Context, board, threadId, replyId, password string) error {
	tid, err := parseId(threadId, "thread_id")
	if err != nil {
		return err
	}
	rid, err := parseId(replyId, "reply_id")
	if err != nil {
		return err
	}
	if password == "" {
		return internal_errors.Validation("missing delete_password")
	}
	matched, err := s.storage.SoftDeleteReply(ctx, board, tid, rid, password, time.Now().Format(domain.TimeFormat))
	if err != nil {
		return err
	}
	if matched == 0 {
		return internal_errors.Forbidden()
	}
	return nil
}
