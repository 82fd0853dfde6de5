package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonboard/anonboard/internal/domain"
)

func (s *Storage) InsertThread(ctx context.Context, t domain.Thread) error {
	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert thread: %w", err)
	}
	return nil
}

// RecentThreads returns up to limit non-deleted threads on a board, most
// recently bumped first. Full documents are returned; trimming fields and
// replies is the view layer's job.
func (s *Storage) RecentThreads(ctx context.Context, board string, limit int) ([]domain.Thread, error) {
	filter := bson.M{"board": board, "deleted_on": notDeleted()}
	opts := options.Find().
		SetSort(bson.D{{Key: "bumped_on_int", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find threads: %w", err)
	}
	var threads []domain.Thread
	if err := cur.All(ctx, &threads); err != nil {
		return nil, fmt.Errorf("decode threads: %w", err)
	}
	return threads, nil
}

// FindThread fetches one non-deleted thread by id and board. The second
// return value reports whether a document matched; a soft-deleted thread is
// indistinguishable from an absent one.
func (s *Storage) FindThread(ctx context.Context, board string, id primitive.ObjectID) (domain.Thread, bool, error) {
	filter := bson.M{"_id": id, "board": board, "deleted_on": notDeleted()}
	var t domain.Thread
	err := s.coll.FindOne(ctx, filter).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Thread{}, false, nil
	}
	if err != nil {
		return domain.Thread{}, false, fmt.Errorf("find thread: %w", err)
	}
	return t, true, nil
}

// ReportThread stamps reported_on on a matching non-deleted thread and
// returns how many documents matched (0 or 1).
func (s *Storage) ReportThread(ctx context.Context, board string, id primitive.ObjectID, now string) (int64, error) {
	filter := bson.M{"_id": id, "board": board, "deleted_on": notDeleted()}
	update := bson.M{"$set": bson.M{"reported_on": now}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("report thread: %w", err)
	}
	return res.MatchedCount, nil
}

// SoftDeleteThread stamps deleted_on only when id, board and password all
// match a not-yet-deleted thread. The password is part of the filter, so the
// check and the write are one atomic operation.
func (s *Storage) SoftDeleteThread(ctx context.Context, board string, id primitive.ObjectID, password, now string) (int64, error) {
	filter := bson.M{
		"_id":             id,
		"board":           board,
		"delete_password": password,
		"deleted_on":      notDeleted(),
	}
	update := bson.M{"$set": bson.M{"deleted_on": now}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("delete thread: %w", err)
	}
	return res.MatchedCount, nil
}
