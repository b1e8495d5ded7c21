package http

import (
	"github.com/gin-gonic/gin"

	"mail-task-planner/pkg/response"
)

// Extract godoc
// @Summary     Extract task candidates from text
// @Description Scans an email subject and body for actionable lines and returns task candidates with priority, estimated hours and deadline.
// @Tags        Extract
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Subject and body text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}
