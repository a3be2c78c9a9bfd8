package impl

import (
	"context"
	"math"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/geo"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"
	"directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBuildingService(t *testing.T, maxRadiusKm float64) (usecase.BuildingUsecase, *mockRepo.MockBuildingRepository) {
	t.Helper()

	buildingRepo := mockRepo.NewMockBuildingRepository(t)
	service := NewBuildingService(BuildingServiceParams{
		BuildingRepo: buildingRepo,
		Config:       newTestConfig(maxRadiusKm),
		Logger:       newDiscardLogger(),
	})

	return service, buildingRepo
}

func TestBuildingService_CreateBuilding(t *testing.T) {
	service, buildingRepo := createTestBuildingService(t, 0)
	ctx := context.Background()

	buildingRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Building) bool {
			return b.Address == "г. Москва, ул. Ленина 1" && b.Latitude == 55.7558 && b.Longitude == 37.6173
		})).
		Run(func(_ context.Context, b *entity.Building) {
			b.ID = 10
		}).
		Return(nil)

	building, err := service.CreateBuilding(ctx, &usecase.CreateBuildingInput{
		Address:   " г. Москва, ул. Ленина 1 ",
		Latitude:  55.7558,
		Longitude: 37.6173,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), building.ID)
}

func TestBuildingService_CreateBuilding_Validation(t *testing.T) {
	service, _ := createTestBuildingService(t, 0)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.CreateBuildingInput
	}{
		{name: "empty address", input: usecase.CreateBuildingInput{Address: "  ", Latitude: 1, Longitude: 1}},
		{name: "latitude too high", input: usecase.CreateBuildingInput{Address: "a", Latitude: 90.5, Longitude: 1}},
		{name: "longitude too low", input: usecase.CreateBuildingInput{Address: "a", Latitude: 1, Longitude: -180.1}},
		{name: "nan latitude", input: usecase.CreateBuildingInput{Address: "a", Latitude: math.NaN(), Longitude: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateBuilding(ctx, &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBuildingService_GetBuilding_NotFound(t *testing.T) {
	service, buildingRepo := createTestBuildingService(t, 0)
	ctx := context.Background()

	buildingRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrBuildingNotFound)

	_, err := service.GetBuilding(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrBuildingNotFound)
}

func TestBuildingService_FindBuildingsInRadius_FiltersBoxCandidates(t *testing.T) {
	service, buildingRepo := createTestBuildingService(t, 0)
	ctx := context.Background()

	const (
		lat      = 55.7558
		lon      = 37.6173
		radiusKm = 1.0
	)
	box := geo.ComputeBoundingBox(lat, lon, radiusKm)

	center := &entity.Building{ID: 1, Latitude: lat, Longitude: lon}
	near := &entity.Building{ID: 2, Latitude: 55.7600, Longitude: 37.6200}
	corner := &entity.Building{ID: 3, Latitude: box.MaxLat, Longitude: box.MaxLon}

	buildingRepo.EXPECT().FindInBox(ctx, box).Return([]*entity.Building{center, near, corner}, nil)

	buildings, err := service.FindBuildingsInRadius(ctx, lat, lon, radiusKm)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Building{center, near}, buildings)
}

func TestBuildingService_FindBuildingsInRadius_ZeroRadius(t *testing.T) {
	service, buildingRepo := createTestBuildingService(t, 0)
	ctx := context.Background()

	exact := &entity.Building{ID: 1, Latitude: 10, Longitude: 20}
	buildingRepo.EXPECT().FindInBox(ctx, geo.ComputeBoundingBox(10, 20, 0)).Return([]*entity.Building{exact}, nil)

	buildings, err := service.FindBuildingsInRadius(ctx, 10, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Building{exact}, buildings)
}

func TestBuildingService_FindBuildingsInRadius_Validation(t *testing.T) {
	service, _ := createTestBuildingService(t, 100)
	ctx := context.Background()

	tests := []struct {
		name     string
		lat      float64
		lon      float64
		radiusKm float64
	}{
		{name: "negative radius", lat: 0, lon: 0, radiusKm: -1},
		{name: "infinite radius", lat: 0, lon: 0, radiusKm: math.Inf(1)},
		{name: "radius above limit", lat: 0, lon: 0, radiusKm: 100.5},
		{name: "bad center", lat: 91, lon: 0, radiusKm: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.FindBuildingsInRadius(ctx, tt.lat, tt.lon, tt.radiusKm)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBuildingService_FindBuildingsInRectangle(t *testing.T) {
	service, buildingRepo := createTestBuildingService(t, 0)
	ctx := context.Background()

	box := geo.BoundingBox{MinLat: 55.75, MaxLat: 55.77, MinLon: 37.61, MaxLon: 37.63}
	inside := &entity.Building{ID: 1, Latitude: 55.76, Longitude: 37.62}
	buildingRepo.EXPECT().FindInBox(ctx, box).Return([]*entity.Building{inside}, nil)

	buildings, err := service.FindBuildingsInRectangle(ctx, box)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Building{inside}, buildings)
}

func TestBuildingService_FindBuildingsInRectangle_InvertedBounds(t *testing.T) {
	service, _ := createTestBuildingService(t, 0)

	_, err := service.FindBuildingsInRectangle(context.Background(), geo.BoundingBox{MinLat: 56, MaxLat: 55, MinLon: 37, MaxLon: 38})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
