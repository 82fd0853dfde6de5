// Package mongo is the document store adapter: one collection of thread
// documents with embedded reply arrays. Every mutation is a single
// conditional UpdateOne, so a report/delete either applies against a
// consistent pre-state or matches nothing; no multi-step writes exist.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/anonboard/anonboard/internal/config"
	"github.com/anonboard/anonboard/internal/logger"
)

type Storage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to mongo", "db", cfg.Private.Mongo.Dbname)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Private.Mongo.Uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	coll := client.Database(cfg.Private.Mongo.Dbname).Collection(cfg.Private.Mongo.Collection)
	logger.Log.Info("connected to mongo")
	return &Storage{client, coll}, nil
}

func (s *Storage) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// notDeleted is the existence predicate shared by every read and every
// conditional update: a document (or embedded reply) with deleted_on set
// must match nothing.
func notDeleted() bson.M {
	return bson.M{"$exists": false}
}
