package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/response"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler holds dependencies for activity-related handlers
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// CreateActivityRequest represents the request body for adding an activity
type CreateActivityRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// ListActivities handles listing the activity forest
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	roots, err := h.activityUC.ListActivityTree(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponses(roots))
}

// GetActivity handles retrieving one activity with its subtree
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	activity, err := h.activityUC.GetActivity(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity))
}

// CreateActivity handles adding an activity to the taxonomy
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var req CreateActivityRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	activity, err := h.activityUC.CreateActivity(c.Request().Context(), &usecase.CreateActivityInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if subject, ok := middleware.GetSubject(c); ok {
		h.logger.Info("Activity created by token holder", slog.String("subject", subject), slog.Int64("activityID", activity.ID))
	}

	return response.Success(c, http.StatusCreated, toActivityResponse(activity))
}
