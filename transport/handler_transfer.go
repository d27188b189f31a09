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

// ListTransfers handler
// @Summary List transfers
// @Description List the full transfer history
// @Tags Transfers
// @Produce json
// @Success 200 {array} model.Transfer
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/transfers [get]
func (s *RestHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.TransferApp.ListTransfers(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetTransfer handler
// @Summary Get transfer
// @Description Get a single transfer by id
// @Tags Transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/transfers/{id} [get]
func (s *RestHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.TransferApp.GetTransfer(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExecuteTransfer handler
// @Summary Execute transfer
// @Description Move units of an item to another warehouse and record the transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body model.TransferRequest true "Transfer Request"
// @Success 200 {object} model.Transfer
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/transfers [post]
func (s *RestHandler) ExecuteTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.ExecuteTransfer(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
