package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anonboard/anonboard/internal/domain"
)

// AppendReply pushes a reply onto a non-deleted thread and bumps both
// bumped_on and the bumped_on_int sort key in the same UpdateOne, so the
// append and the bump can never be observed separately.
func (s *Storage) AppendReply(ctx context.Context, board string, threadId primitive.ObjectID, reply domain.Reply, bumpedOn string, bumpedOnInt int64) (int64, error) {
	filter := bson.M{"_id": threadId, "board": board, "deleted_on": notDeleted()}
	update := bson.M{
		"$set":  bson.M{"bumped_on": bumpedOn, "bumped_on_int": bumpedOnInt},
		"$push": bson.M{"replies": reply},
	}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("append reply: %w", err)
	}
	return res.MatchedCount, nil
}

// ReportReply stamps reported_on on one embedded reply via a positional
// update. Both the thread and the reply must be non-deleted to match.
func (s *Storage) ReportReply(ctx context.Context, board string, threadId, replyId primitive.ObjectID, now string) (int64, error) {
	filter := bson.M{
		"_id":        threadId,
		"board":      board,
		"deleted_on": notDeleted(),
		// $elemMatch pins the positional $ to the one reply that is both
		// the requested id and not yet deleted
		"replies": bson.M{"$elemMatch": bson.M{
			"_id":        replyId,
			"deleted_on": notDeleted(),
		}},
	}
	update := bson.M{"$set": bson.M{"replies.$.reported_on": now}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("report reply: %w", err)
	}
	return res.MatchedCount, nil
}

// SoftDeleteReply stamps deleted_on on one embedded reply and replaces its
// text with the deletion marker, keyed on the reply's own password. The
// reply stays in place in the array; only its text changes.
func (s *Storage) SoftDeleteReply(ctx context.Context, board string, threadId, replyId primitive.ObjectID, password, now string) (int64, error) {
	filter := bson.M{
		"_id":        threadId,
		"board":      board,
		"deleted_on": notDeleted(),
		"replies": bson.M{"$elemMatch": bson.M{
			"_id":             replyId,
			"delete_password": password,
			"deleted_on":      notDeleted(),
		}},
	}
	update := bson.M{"$set": bson.M{
		"replies.$.deleted_on": now,
		"replies.$.text":       domain.DeletedMarker,
	}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("delete reply: %w", err)
	}
	return res.MatchedCount, nil
}
