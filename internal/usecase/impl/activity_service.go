package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	logs "directory/internal/infra/log"
	"directory/internal/infra/metrics"
	"directory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// CreateActivity places a new activity one level below its parent, or at the
// root. The parent read and the insert share one transaction.
func (srv *activityService) CreateActivity(ctx context.Context, input *usecase.CreateActivityInput) (*entity.Activity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if utf8.RuneCountInString(name) > entity.MaxActivityNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is too long")
	}

	activity := &entity.Activity{
		Name:  name,
		Level: entity.RootActivityLevel,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.NewActivityRepository()

		if input.ParentID != nil {
			parent, err := activityRepo.FindByID(ctx, *input.ParentID)
			if err != nil {
				if errors.Is(err, repository.ErrActivityNotFound) {
					return domainerrors.ErrParentActivityNotFound.WithDetails(fmt.Sprintf("parent id %d", *input.ParentID))
				}

				return errors.Wrap(err, "failed to find parent activity")
			}

			if !parent.CanHaveChildren() {
				return domainerrors.ErrMaxDepthExceeded.WithDetails(fmt.Sprintf("maximum level is %d", entity.MaxActivityLevel))
			}

			parentID := parent.ID
			activity.ParentID = &parentID
			activity.Level = parent.ChildLevel()
		}

		return activityRepo.Create(ctx, activity)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create activity", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create activity")
	}

	srv.log(ctx).Info("Activity created", slog.Int64("activityID", activity.ID), slog.Int("level", activity.Level))

	return activity, nil
}

// GetActivity returns the activity with its subtree attached.
func (srv *activityService) GetActivity(ctx context.Context, id int64) (*entity.Activity, error) {
	if _, err := srv.activityRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	all, err := srv.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activities")
	}

	nodes := linkActivityTree(all)
	node, ok := nodes[id]
	if !ok {
		// Deleted between the two reads.
		return nil, domainerrors.ErrActivityNotFound
	}

	return node, nil
}

// ListActivityTree returns the forest of root activities.
func (srv *activityService) ListActivityTree(ctx context.Context) ([]*entity.Activity, error) {
	all, err := srv.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activities")
	}

	nodes := linkActivityTree(all)

	roots := make([]*entity.Activity, 0)
	for _, activity := range all {
		node := nodes[activity.ID]
		if node.ParentID == nil {
			roots = append(roots, node)
		} else if _, ok := nodes[*node.ParentID]; !ok {
			roots = append(roots, node)
		}
	}
	sortActivities(roots)

	return roots, nil
}

// DescendantIDs returns the closure of activityID over child edges.
func (srv *activityService) DescendantIDs(ctx context.Context, activityID int64) ([]int64, error) {
	return descendantIDs(ctx, srv.activityRepo, activityID)
}

// descendantIDs walks the tree one level per round, asking the store for the
// children of the whole frontier at once. The taxonomy depth bounds the number
// of rounds, so a corrupt cycle cannot loop forever.
func descendantIDs(ctx context.Context, activityRepo repository.ActivityRepository, activityID int64) ([]int64, error) {
	seen := map[int64]struct{}{activityID: {}}
	ids := []int64{activityID}
	frontier := []int64{activityID}

	for round := 0; round < entity.MaxActivityLevel && len(frontier) > 0; round++ {
		children, err := activityRepo.FindChildIDs(ctx, frontier)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find child activities")
		}

		next := make([]int64, 0, len(children))
		for _, childID := range children {
			if _, ok := seen[childID]; ok {
				continue
			}
			seen[childID] = struct{}{}
			ids = append(ids, childID)
			next = append(next, childID)
		}
		frontier = next
	}

	slices.Sort(ids)
	metrics.ActivityClosureSize.Observe(float64(len(ids)))

	return ids, nil
}

// linkActivityTree indexes copies of the activities by id and attaches each
// one to its parent's Children, ordered by id.
func linkActivityTree(activities []*entity.Activity) map[int64]*entity.Activity {
	nodes := make(map[int64]*entity.Activity, len(activities))
	for _, activity := range activities {
		node := *activity
		node.Children = []*entity.Activity{}
		nodes[node.ID] = &node
	}

	for _, activity := range activities {
		if activity.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*activity.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[activity.ID])
		}
	}

	for _, node := range nodes {
		sortActivities(node.Children)
	}

	return nodes
}

func sortActivities(activities []*entity.Activity) {
	slices.SortFunc(activities, func(a, b *entity.Activity) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
