package impl

import (
	"context"
	"io"
	"log/slog"

	"directory/config"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxRadiusKm float64) *config.Config {
	return &config.Config{
		Geo: &config.GeoConfig{MaxRadiusKm: maxRadiusKm},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

// expectTransaction makes txManager run the callback with factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
