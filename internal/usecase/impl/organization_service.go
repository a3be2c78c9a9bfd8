package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/geo"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	logs "directory/internal/infra/log"
	"directory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type organizationService struct {
	txManager    repository.TransactionManager
	orgRepo      repository.OrganizationRepository
	buildingRepo repository.BuildingRepository
	activityRepo repository.ActivityRepository
	qrService    service.QRCodeService
	maxRadiusKm  float64
	logger       *slog.Logger
}

// OrganizationServiceParams holds dependencies for OrganizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrgRepo      repository.OrganizationRepository
	BuildingRepo repository.BuildingRepository
	ActivityRepo repository.ActivityRepository
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrganizationService creates a new organization service instance
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
		txManager:    params.TxManager,
		orgRepo:      params.OrgRepo,
		buildingRepo: params.BuildingRepo,
		activityRepo: params.ActivityRepo,
		qrService:    params.QRService,
		maxRadiusKm:  maxRadiusKm(params.Config),
		logger:       params.Logger,
	}
}

func (srv *organizationService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// CreateOrganization checks the building and every activity reference, then
// stores the organization and its activity links in one transaction.
func (srv *organizationService) CreateOrganization(ctx context.Context, input *usecase.CreateOrganizationInput) (*entity.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if utf8.RuneCountInString(name) > entity.MaxOrganizationNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is too long")
	}

	// Phones are stored exactly as sent, in order.
	for i, phone := range input.Phones {
		if strings.TrimSpace(phone) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("phones[%d] is required", i))
		}
		if utf8.RuneCountInString(phone) > entity.MaxPhoneLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("phones[%d] must have at most %d characters", i, entity.MaxPhoneLength))
		}
	}
	phones := make([]string, len(input.Phones))
	copy(phones, input.Phones)

	activityIDs := slices.Clone(input.ActivityIDs)
	slices.Sort(activityIDs)
	activityIDs = slices.Compact(activityIDs)

	org := &entity.Organization{
		Name:       name,
		Phones:     phones,
		BuildingID: input.BuildingID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buildingRepo := repoFactory.NewBuildingRepository()
		activityRepo := repoFactory.NewActivityRepository()
		orgRepo := repoFactory.NewOrganizationRepository()

		if _, err := buildingRepo.FindByID(ctx, input.BuildingID); err != nil {
			if errors.Is(err, repository.ErrBuildingNotFound) {
				return domainerrors.ErrBuildingNotFound.WithDetails(fmt.Sprintf("building id %d", input.BuildingID))
			}

			return errors.Wrap(err, "failed to find building")
		}

		activities, err := activityRepo.FindByIDs(ctx, activityIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find activities")
		}
		if missing := missingActivityIDs(activityIDs, activities); len(missing) > 0 {
			return domainerrors.ErrReferencedActivityNotFound.WithDetails(fmt.Sprintf("activity ids %v", missing))
		}

		if err := orgRepo.Create(ctx, org); err != nil {
			return err
		}

		return orgRepo.AttachActivities(ctx, org.ID, activityIDs)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create organization", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create organization")
	}

	created, err := srv.orgRepo.FindByID(ctx, org.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload organization")
	}

	srv.log(ctx).Info("Organization created", slog.Int64("organizationID", created.ID), slog.Int("activities", len(activityIDs)))

	return created, nil
}

func missingActivityIDs(wanted []int64, found []*entity.Activity) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, activity := range found {
		present[activity.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range wanted {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

// GetOrganization retrieves an organization by id.
func (srv *organizationService) GetOrganization(ctx context.Context, id int64) (*entity.Organization, error) {
	org, err := srv.orgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization")
	}

	return org, nil
}

// GetOrganizationsByBuilding lists the organizations located in a building.
func (srv *organizationService) GetOrganizationsByBuilding(ctx context.Context, buildingID int64) ([]*entity.Organization, error) {
	if _, err := srv.buildingRepo.FindByID(ctx, buildingID); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building")
	}

	orgs, err := srv.orgRepo.FindByBuildingIDs(ctx, []int64{buildingID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by building")
	}

	return orgs, nil
}

// GetOrganizationsByActivity lists organizations practicing the activity or,
// with includeDescendants, any activity in its subtree.
func (srv *organizationService) GetOrganizationsByActivity(ctx context.Context, activityID int64, includeDescendants bool) ([]*entity.Organization, error) {
	if _, err := srv.activityRepo.FindByID(ctx, activityID); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	activityIDs := []int64{activityID}
	if includeDescendants {
		ids, err := descendantIDs(ctx, srv.activityRepo, activityID)
		if err != nil {
			return nil, err
		}
		activityIDs = ids
	}

	orgs, err := srv.orgRepo.FindByActivityIDs(ctx, activityIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by activity")
	}

	return orgs, nil
}

// SearchOrganizationsByName matches a case-insensitive substring of the name.
func (srv *organizationService) SearchOrganizationsByName(ctx context.Context, text string) ([]*entity.Organization, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search text is required")
	}

	orgs, err := srv.orgRepo.SearchByName(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search organizations by name")
	}

	return orgs, nil
}

// GetOrganizationsInGeoArea lists organizations whose building lies in the
// requested circle or rectangle.
func (srv *organizationService) GetOrganizationsInGeoArea(ctx context.Context, input *usecase.GeoSearchInput) ([]*entity.Organization, error) {
	var (
		buildings []*entity.Building
		err       error
	)

	switch {
	case input.HasRadius():
		lat, lon, radiusKm := *input.Latitude, *input.Longitude, *input.RadiusKm
		if err := validateRadiusQuery(lat, lon, radiusKm, srv.maxRadiusKm); err != nil {
			return nil, err
		}
		buildings, err = radiusSearch(ctx, srv.buildingRepo, lat, lon, radiusKm)
	case input.HasRectangle():
		box := geo.BoundingBox{
			MinLat: *input.MinLatitude,
			MaxLat: *input.MaxLatitude,
			MinLon: *input.MinLongitude,
			MaxLon: *input.MaxLongitude,
		}
		if err := validateRectangle(box); err != nil {
			return nil, err
		}
		buildings, err = rectangleSearch(ctx, srv.buildingRepo, box)
	default:
		return nil, domainerrors.ErrInvalidGeoQuery
	}
	if err != nil {
		return nil, err
	}

	if len(buildings) == 0 {
		return []*entity.Organization{}, nil
	}

	orgs, err := srv.orgRepo.FindByBuildingIDs(ctx, buildingIDs(buildings))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by buildings")
	}

	srv.log(ctx).Debug("Geo search finished", slog.Int("buildings", len(buildings)), slog.Int("organizations", len(orgs)))

	return orgs, nil
}

// GenerateOrganizationCard renders the organization's contact card as a PNG QR code.
func (srv *organizationService) GenerateOrganizationCard(ctx context.Context, id int64) ([]byte, error) {
	org, err := srv.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrganizationCard(org)
	if err != nil {
		srv.log(ctx).Error("Failed to generate organization card", slog.Int64("organizationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate organization card")
	}

	return png, nil
}
