package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

// Error details returned to clients.
const (
	detailNotFound          = "Activity not found"
	detailAlreadyRegistered = "Student is already signed up"
	detailNotRegistered     = "Student is not signed up for this activity"
	detailEmailRequired     = "email is required"
	detailInternal          = "internal server error"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with its description, schedule, capacity and participants in signup order.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.APIError
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	acts, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	resp := make(map[string]*domain.Activity, len(acts))
	for _, a := range acts {
		resp[a.Name] = a
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Adds the email to the activity's participants. Capacity is not enforced.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "already signed up, or email missing"
// @Failure 404 {object} helpers.APIError "activity not found"
// @Failure 500 {object} helpers.APIError
// @Router /activities/{name}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	name, email := participationParams(r)
	msg, err := c.Service.Signup(r.Context(), name, email)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, msg)
}

// Unregister godoc
// @Summary Withdraw from an activity
// @Description Removes the email from the activity's participants.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "not signed up, or email missing"
// @Failure 404 {object} helpers.APIError "activity not found"
// @Failure 500 {object} helpers.APIError
// @Router /activities/{name}/signup [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	name, email := participationParams(r)
	msg, err := c.Service.Unregister(r.Context(), name, email)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, msg)
}

// participationParams reads the activity name and the email exactly as sent.
// An empty email is rejected by the service after the activity lookup.
func participationParams(r *http.Request) (name, email string) {
	return r.PathValue("name"), r.URL.Query().Get("email")
}

func (c *ActivityController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, detailNotFound)
	case errors.Is(err, domain.ErrAlreadyRegistered):
		helpers.WriteJSONError(w, http.StatusBadRequest, detailAlreadyRegistered)
	case errors.Is(err, domain.ErrNotRegistered):
		helpers.WriteJSONError(w, http.StatusBadRequest, detailNotRegistered)
	case errors.Is(err, domain.ErrEmailRequired):
		helpers.WriteJSONError(w, http.StatusBadRequest, detailEmailRequired)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, detailInternal)
	}
}
