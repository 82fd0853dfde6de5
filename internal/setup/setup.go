package setup

import (
	"context"

	"github.com/anonboard/anonboard/internal/config"
	"github.com/anonboard/anonboard/internal/handler"
	"github.com/anonboard/anonboard/internal/service"
	"github.com/anonboard/anonboard/internal/storage/mongo"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *mongo.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := mongo.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	thread := service.NewThread(storage, cfg)
	reply := service.NewReply(storage)

	h := handler.New(thread, reply, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
