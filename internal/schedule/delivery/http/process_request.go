package http

import (
	"github.com/gin-gonic/gin"
)

// processBuildReq binds and validates the build request body.
func (h *handler) processBuildReq(c *gin.Context) (buildReq, error) {
	var req buildReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportReq binds and validates the export request body.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
