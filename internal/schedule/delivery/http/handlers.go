package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"mail-task-planner/internal/middleware"
	"mail-task-planner/internal/schedule"
	"mail-task-planner/internal/task"
	"mail-task-planner/pkg/response"
)

// Build godoc
// @Summary     Build a daily schedule
// @Description Packs open tasks into daily blocks by priority and deadline, skipping weekends.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body buildReq true "Schedule parameters"
// @Success     200  {object} buildResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/build [POST]
func (h *handler) Build(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBuildReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.buildInput(ctx, c, req)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Build(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Build: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBuildResp(output))
}

// Export godoc
// @Summary     Export a schedule to Google Calendar
// @Description Builds the schedule and creates one calendar event per scheduled task.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Schedule and calendar parameters"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar Unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.buildInput(ctx, c, req.buildReq)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	built, err := h.uc.Build(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Build: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Export(ctx, schedule.ExportInput{
		Days:       built.Days,
		CalendarID: req.CalendarID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportResp(output))
}

// buildInput resolves the request into a use-case input, fetching the open
// tasks from the task domain.
func (h *handler) buildInput(ctx context.Context, c *gin.Context, req buildReq) (schedule.BuildInput, error) {
	startDate, err := h.parseStartDate(req.StartDate)
	if err != nil {
		return schedule.BuildInput{}, err
	}

	sc := middleware.ScopeFromContext(c)
	open := false
	listed, err := h.taskUC.List(ctx, sc, task.ListInput{Completed: &open, Limit: maxScheduleTasks})
	if err != nil {
		h.l.Errorf(ctx, "taskUC.List: %v", err)
		return schedule.BuildInput{}, err
	}

	return schedule.BuildInput{
		Tasks:           listed.Tasks,
		WorkHoursPerDay: req.WorkHoursPerDay,
		StartDate:       startDate,
	}, nil
}
