package controllers

import (
	"fmt"
	"net/http"

	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/exceptions"
	"lavanderia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReservationController struct {
	BookingUsecase contracts.BookingUsecase
	Log            *zap.Logger
}

func NewReservationController(bookingUsecase contracts.BookingUsecase, log *zap.Logger) *ReservationController {
	return &ReservationController{
		BookingUsecase: bookingUsecase,
		Log:            log,
	}
}

func (c *ReservationController) FindByDate(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")
	if !regexDateKey.MatchString(dateKey) {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidDateKey(fmt.Errorf("invalid date %q", dateKey)))
		return
	}

	reservations, err := c.BookingUsecase.ListReservationsByDate(r.Context(), dateKey)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReservationsSuccessMessage, reservations)
}

func (c *ReservationController) Cancel(w http.ResponseWriter, r *http.Request) {
	var request requests.CancelReservation
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := c.BookingUsecase.CancelReservation(r.Context(), &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelReservationSuccessMessage, nil)
}
