package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "intentions-tracker/pkg/errors"
)

var errMissingParam = pkgErrors.NewHTTPError(400, "missing path parameter")

// processCheckInReq binds and validates the check-in request body.
func (h *handler) processCheckInReq(c *gin.Context) (checkInReq, error) {
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processParseIntentionsReq binds the transcript-parsing request body.
func (h *handler) processParseIntentionsReq(c *gin.Context) (parseIntentionsReq, error) {
	var req parseIntentionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSaveSetReq binds the intention-set confirmation body.
func (h *handler) processSaveSetReq(c *gin.Context) (saveSetReq, error) {
	var req saveSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateIntentionReq binds the intention creation body.
func (h *handler) processCreateIntentionReq(c *gin.Context) (createIntentionReq, error) {
	var req createIntentionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateIntentionReq binds the update body plus URI param.
func (h *handler) processUpdateIntentionReq(c *gin.Context) (updateIntentionReq, error) {
	var req updateIntentionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingParam
	}
	return req, nil
}

// processSetOverrideReq binds the override body plus URI params.
func (h *handler) processSetOverrideReq(c *gin.Context) (setOverrideReq, error) {
	var req setOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.DateKey = c.Param("date")
	req.IntentionID = c.Param("intentionID")
	if req.DateKey == "" || req.IntentionID == "" {
		return req, errMissingParam
	}
	return req, nil
}
