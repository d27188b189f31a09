package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/model"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
	validatorx "github.com/muhammadheryan/warehouse-tracker/utils/validator"
)

// ListActivities handler
// @Summary List activity log
// @Description List activity entries, newest first
// @Tags Activity
// @Produce json
// @Success 200 {array} model.Activity
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/activity [get]
func (s *RestHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ActivityApp.ListActivities(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetActivity handler
// @Summary Get activity entry
// @Description Get a single activity entry by id
// @Tags Activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} model.Activity
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/activity/{id} [get]
func (s *RestHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.ActivityApp.GetActivity(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecordActivity handler
// @Summary Record activity entry
// @Description Append an entry to the activity log
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body model.RecordActivityRequest true "Record Activity Request"
// @Success 200 {object} model.Activity
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/activity [post]
func (s *RestHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ActivityApp.RecordActivity(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
