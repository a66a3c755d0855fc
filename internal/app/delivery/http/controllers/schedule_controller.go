package controllers

import (
	"fmt"
	"net/http"
	"regexp"

	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/exceptions"
	"lavanderia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var regexDateKey = regexp.MustCompile(constvars.RegexDateYYYYMMDD)

type ScheduleController struct {
	ScheduleUsecase contracts.ScheduleUsecase
	Log             *zap.Logger
}

func NewScheduleController(scheduleUsecase contracts.ScheduleUsecase, log *zap.Logger) *ScheduleController {
	return &ScheduleController{
		ScheduleUsecase: scheduleUsecase,
		Log:             log,
	}
}

func (c *ScheduleController) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")
	if !regexDateKey.MatchString(dateKey) {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidDateKey(fmt.Errorf("invalid date %q", dateKey)))
		return
	}

	schedule, err := c.ScheduleUsecase.ScheduleForDay(r.Context(), dateKey)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, schedule)
}
