package impl

import (
	"bytes"
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/geo"
	"directory/internal/infra/persistence/memory"
	"directory/internal/infra/qrcode"
	"directory/internal/seed"
	"directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DirectorySuite runs the services against the in-memory store loaded with
// the demo dataset.
type DirectorySuite struct {
	suite.Suite

	ctx    context.Context
	store  *memory.Store
	uc     seed.Usecases
	seeded *seed.Result
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()

	cfg := newTestConfig(500)
	logger := newDiscardLogger()

	s.uc = seed.Usecases{
		Buildings: NewBuildingService(BuildingServiceParams{
			BuildingRepo: s.store.BuildingRepository(),
			Config:       cfg,
			Logger:       logger,
		}),
		Activities: NewActivityService(ActivityServiceParams{
			TxManager:    s.store.TransactionManager(),
			ActivityRepo: s.store.ActivityRepository(),
			Logger:       logger,
		}),
		Organizations: NewOrganizationService(OrganizationServiceParams{
			TxManager:    s.store.TransactionManager(),
			OrgRepo:      s.store.OrganizationRepository(),
			BuildingRepo: s.store.BuildingRepository(),
			ActivityRepo: s.store.ActivityRepository(),
			QRService:    qrcode.NewQRCodeService(256, "M"),
			Config:       cfg,
			Logger:       logger,
		}),
	}

	seeded, err := seed.Load(s.ctx, s.uc)
	s.Require().NoError(err)
	s.seeded = seeded
}

func (s *DirectorySuite) activity(name string) int64 {
	id, ok := s.seeded.Activities[name]
	s.Require().True(ok, "unknown activity %q", name)

	return id
}

func organizationNames(orgs []*entity.Organization) []string {
	names := make([]string, 0, len(orgs))
	for _, org := range orgs {
		names = append(names, org.Name)
	}

	return names
}

func (s *DirectorySuite) TestSeedShape() {
	buildings, err := s.uc.Buildings.ListBuildings(s.ctx)
	s.Require().NoError(err)
	s.Len(buildings, 5)

	roots, err := s.uc.Activities.ListActivityTree(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(roots, 2)
	s.Equal("Еда", roots[0].Name)
	s.Equal("Автомобили", roots[1].Name)

	parts := roots[1].Children[2]
	s.Equal("Запчасти", parts.Name)
	s.Require().Len(parts.Children, 1)
	s.Equal(entity.MaxActivityLevel, parts.Children[0].Level)
}

func (s *DirectorySuite) TestOrganizationsByActivity_Food() {
	food := s.activity("Еда")

	direct, err := s.uc.Organizations.GetOrganizationsByActivity(s.ctx, food, false)
	s.Require().NoError(err)
	s.Equal([]string{`ИП Иванов "Продукты"`}, organizationNames(direct))

	all, err := s.uc.Organizations.GetOrganizationsByActivity(s.ctx, food, true)
	s.Require().NoError(err)
	s.Equal([]string{
		`ООО "Рога и Копыта"`,
		`ООО "МясоТорг"`,
		`ООО "Молочный Рай"`,
		`ИП Иванов "Продукты"`,
	}, organizationNames(all))
}

func (s *DirectorySuite) TestOrganizationsByActivity_Meat() {
	meat := s.activity("Мясная продукция")

	direct, err := s.uc.Organizations.GetOrganizationsByActivity(s.ctx, meat, false)
	s.Require().NoError(err)
	s.Equal([]string{`ООО "Рога и Копыта"`}, organizationNames(direct))

	all, err := s.uc.Organizations.GetOrganizationsByActivity(s.ctx, meat, true)
	s.Require().NoError(err)
	s.Equal([]string{`ООО "Рога и Копыта"`, `ООО "МясоТорг"`}, organizationNames(all))
}

func (s *DirectorySuite) TestOrganizationsByActivity_Unknown() {
	_, err := s.uc.Organizations.GetOrganizationsByActivity(s.ctx, 10_000, true)
	s.ErrorIs(err, domainerrors.ErrActivityNotFound)
}

func (s *DirectorySuite) TestDescendantIDs() {
	ids, err := s.uc.Activities.DescendantIDs(s.ctx, s.activity("Автомобили"))
	s.Require().NoError(err)
	s.ElementsMatch([]int64{
		s.activity("Автомобили"),
		s.activity("Грузовые"),
		s.activity("Легковые"),
		s.activity("Запчасти"),
		s.activity("Аксессуары"),
	}, ids)

	leaf, err := s.uc.Activities.DescendantIDs(s.ctx, s.activity("Сыры"))
	s.Require().NoError(err)
	s.Equal([]int64{s.activity("Сыры")}, leaf)
}

func (s *DirectorySuite) TestSearchOrganizationsByName() {
	orgs, err := s.uc.Organizations.SearchOrganizationsByName(s.ctx, "мясо")
	s.Require().NoError(err)
	s.Equal([]string{`ООО "МясоТорг"`}, organizationNames(orgs))

	orgs, err = s.uc.Organizations.SearchOrganizationsByName(s.ctx, "ооо")
	s.Require().NoError(err)
	s.Len(orgs, 6)

	orgs, err = s.uc.Organizations.SearchOrganizationsByName(s.ctx, "%")
	s.Require().NoError(err)
	s.Empty(orgs)
}

func (s *DirectorySuite) TestOrganizationsByBuilding() {
	orgs, err := s.uc.Organizations.GetOrganizationsByBuilding(s.ctx, s.seeded.Buildings[seed.BuildingMira])
	s.Require().NoError(err)
	s.Equal([]string{`ООО "АвтоМир"`, `ООО "ГрузАвто"`}, organizationNames(orgs))

	s.Require().NotNil(orgs[0].Building)
	s.Equal("г. Москва, пр. Мира 15", orgs[0].Building.Address)
	s.Len(orgs[0].Activities, 2)
}

func (s *DirectorySuite) TestGeoArea_Radius() {
	lenina, err := s.uc.Buildings.GetBuilding(s.ctx, s.seeded.Buildings[seed.BuildingLenina])
	s.Require().NoError(err)

	orgs, err := s.uc.Organizations.GetOrganizationsInGeoArea(s.ctx, &usecase.GeoSearchInput{
		Latitude:  float64Ptr(lenina.Latitude),
		Longitude: float64Ptr(lenina.Longitude),
		RadiusKm:  float64Ptr(1),
	})
	s.Require().NoError(err)
	s.Equal([]string{
		`ООО "Рога и Копыта"`,
		`ООО "МясоТорг"`,
		`ООО "Молочный Рай"`,
	}, organizationNames(orgs))

	buildings, err := s.uc.Buildings.FindBuildingsInRadius(s.ctx, lenina.Latitude, lenina.Longitude, 2)
	s.Require().NoError(err)
	s.Len(buildings, 3)
}

func (s *DirectorySuite) TestGeoArea_DegenerateRectangle() {
	orgs, err := s.uc.Organizations.GetOrganizationsInGeoArea(s.ctx, &usecase.GeoSearchInput{
		MinLatitude:  float64Ptr(55.7558),
		MaxLatitude:  float64Ptr(55.7558),
		MinLongitude: float64Ptr(37.6173),
		MaxLongitude: float64Ptr(37.6173),
	})
	s.Require().NoError(err)
	s.Equal([]string{`ООО "Рога и Копыта"`, `ООО "Молочный Рай"`}, organizationNames(orgs))
}

func (s *DirectorySuite) TestGeoArea_SaintPetersburgRectangle() {
	buildings, err := s.uc.Buildings.FindBuildingsInRectangle(s.ctx, geo.BoundingBox{
		MinLat: 59.9, MaxLat: 60.0, MinLon: 30.3, MaxLon: 30.4,
	})
	s.Require().NoError(err)
	s.Len(buildings, 2)

	orgs, err := s.uc.Organizations.GetOrganizationsInGeoArea(s.ctx, &usecase.GeoSearchInput{
		MinLatitude:  float64Ptr(59.9),
		MaxLatitude:  float64Ptr(60.0),
		MinLongitude: float64Ptr(30.3),
		MaxLongitude: float64Ptr(30.4),
	})
	s.Require().NoError(err)
	s.Equal([]string{`ООО "Запчасти Плюс"`, `ИП Иванов "Продукты"`}, organizationNames(orgs))
}

func (s *DirectorySuite) TestGeoArea_Empty() {
	orgs, err := s.uc.Organizations.GetOrganizationsInGeoArea(s.ctx, &usecase.GeoSearchInput{
		Latitude:  float64Ptr(0),
		Longitude: float64Ptr(0),
		RadiusKm:  float64Ptr(10),
	})
	s.Require().NoError(err)
	s.NotNil(orgs)
	s.Empty(orgs)
}

func (s *DirectorySuite) TestCreateActivity_DepthLimit() {
	_, err := s.uc.Activities.CreateActivity(s.ctx, &usecase.CreateActivityInput{
		Name:     "Чехлы",
		ParentID: int64Ptr(s.activity("Аксессуары")),
	})
	s.ErrorIs(err, domainerrors.ErrMaxDepthExceeded)

	_, err = s.uc.Activities.CreateActivity(s.ctx, &usecase.CreateActivityInput{
		Name:     "Сирота",
		ParentID: int64Ptr(10_000),
	})
	s.ErrorIs(err, domainerrors.ErrParentActivityNotFound)
}

func (s *DirectorySuite) TestCreateOrganization_RollsBackOnMissingActivity() {
	buildingID := s.seeded.Buildings[seed.BuildingNevsky]

	_, err := s.uc.Organizations.CreateOrganization(s.ctx, &usecase.CreateOrganizationInput{
		Name:        "ООО Призрак",
		BuildingID:  buildingID,
		ActivityIDs: []int64{s.activity("Молоко"), 10_000},
	})
	s.Require().ErrorIs(err, domainerrors.ErrReferencedActivityNotFound)

	orgs, err := s.uc.Organizations.GetOrganizationsByBuilding(s.ctx, buildingID)
	s.Require().NoError(err)
	s.Equal([]string{`ООО "Запчасти Плюс"`}, organizationNames(orgs))
}

func (s *DirectorySuite) TestCreateOrganization_KeepsPhoneOrder() {
	org, err := s.uc.Organizations.CreateOrganization(s.ctx, &usecase.CreateOrganizationInput{
		Name:        "ООО Новое",
		Phones:      []string{"9-999", "1-111"},
		BuildingID:  s.seeded.Buildings[seed.BuildingSadovaya],
		ActivityIDs: []int64{s.activity("Сыры"), s.activity("Сыры")},
	})
	s.Require().NoError(err)
	s.Equal([]string{"9-999", "1-111"}, org.Phones)
	s.Equal([]int64{s.activity("Сыры")}, org.ActivityIDs())
	s.Equal(s.seeded.Buildings[seed.BuildingSadovaya], org.Building.ID)
}

func (s *DirectorySuite) TestGenerateOrganizationCard() {
	png, err := s.uc.Organizations.GenerateOrganizationCard(s.ctx, s.seeded.Organizations[`ООО "МясоТорг"`])
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = s.uc.Organizations.GenerateOrganizationCard(s.ctx, 10_000)
	s.ErrorIs(err, domainerrors.ErrOrganizationNotFound)
}

func TestSeedLoad_IsRepeatable(t *testing.T) {
	store := memory.NewStore()
	logger := newDiscardLogger()
	cfg := newTestConfig(0)

	uc := seed.Usecases{
		Buildings: NewBuildingService(BuildingServiceParams{BuildingRepo: store.BuildingRepository(), Config: cfg, Logger: logger}),
		Activities: NewActivityService(ActivityServiceParams{
			TxManager:    store.TransactionManager(),
			ActivityRepo: store.ActivityRepository(),
			Logger:       logger,
		}),
		Organizations: NewOrganizationService(OrganizationServiceParams{
			TxManager:    store.TransactionManager(),
			OrgRepo:      store.OrganizationRepository(),
			BuildingRepo: store.BuildingRepository(),
			ActivityRepo: store.ActivityRepository(),
			QRService:    qrcode.NewQRCodeService(256, "M"),
			Config:       cfg,
			Logger:       logger,
		}),
	}

	first, err := seed.Load(context.Background(), uc)
	require.NoError(t, err)
	second, err := seed.Load(context.Background(), uc)
	require.NoError(t, err)

	assert.NotEqual(t, first.Buildings[seed.BuildingLenina], second.Buildings[seed.BuildingLenina])

	orgs, err := uc.Organizations.SearchOrganizationsByName(context.Background(), "мясоторг")
	require.NoError(t, err)
	assert.Len(t, orgs, 2)
}
