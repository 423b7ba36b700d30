package http

import (
	"github.com/gin-gonic/gin"

	"intentions-tracker/pkg/response"
)

// ProcessCheckIn godoc
// @Summary     Record a check-in
// @Description Stores the transcript, extracts progress updates via the LLM, and appends progress entries.
// @Tags        CheckIns
// @Accept      json
// @Produce     json
// @Param       body body checkInReq true "Check-in transcript"
// @Success     200 {object} checkInResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "No intention set is active yet"
// @Failure     422 {object} response.Resp "Nothing usable could be extracted"
// @Router      /api/v1/check-ins [POST]
func (h *handler) ProcessCheckIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCheckInReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessCheckIn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessCheckIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCheckInResp(output))
}

// ParseIntentions godoc
// @Summary     Parse intentions from a transcript
// @Description Extracts structured goals from spoken text. Nothing is persisted until the set is confirmed.
// @Tags        Intentions
// @Accept      json
// @Produce     json
// @Param       body body parseIntentionsReq true "Goal-setting transcript"
// @Success     200 {object} parseIntentionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No intentions could be extracted"
// @Router      /api/v1/intentions/parse [POST]
func (h *handler) ParseIntentions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseIntentionsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseIntentions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseIntentions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseIntentionsResp(output))
}

// SaveIntentionSet godoc
// @Summary     Confirm an intention set
// @Description Persists the confirmed intentions and activates a new dated set.
// @Tags        Intentions
// @Accept      json
// @Produce     json
// @Param       body body saveSetReq true "Confirmed intentions"
// @Success     200 {object} saveSetResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intention-sets [POST]
func (h *handler) SaveIntentionSet(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveSetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SaveIntentionSet(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveIntentionSet: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSaveSetResp(output))
}

// CreateIntention godoc
// @Summary     Create an intention
// @Tags        Intentions
// @Accept      json
// @Produce     json
// @Param       body body createIntentionReq true "Intention data"
// @Success     200 {object} intentionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intentions [POST]
func (h *handler) CreateIntention(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateIntentionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateIntention(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateIntention: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIntentionResp(output.Intention))
}

// ListIntentions godoc
// @Summary     List all intentions
// @Tags        Intentions
// @Produce     json
// @Success     200 {object} listIntentionsResp
// @Router      /api/v1/intentions [GET]
func (h *handler) ListIntentions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIntentions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIntentions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListIntentionsResp(output))
}

// UpdateIntention godoc
// @Summary     Update an intention
// @Description Partial update; omitted fields keep their current value.
// @Tags        Intentions
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Intention ID"
// @Param       body body updateIntentionReq true "Fields to update"
// @Success     200 {object} intentionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/intentions/{id} [PUT]
func (h *handler) UpdateIntention(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateIntentionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateIntention(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateIntention: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIntentionResp(output.Intention))
}

// DeactivateIntention godoc
// @Summary     Deactivate an intention
// @Description Soft delete; historical entries keep resolving.
// @Tags        Intentions
// @Produce     json
// @Param       id path string true "Intention ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/intentions/{id} [DELETE]
func (h *handler) DeactivateIntention(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingParam)
		return
	}

	if err := h.uc.DeactivateIntention(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeactivateIntention: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DayDetail godoc
// @Summary     Day detail
// @Description Full view of one calendar day: intentions, entries, totals, overall percentage, mood.
// @Tags        Days
// @Produce     json
// @Param       date path string true "Date key (YYYY-MM-DD)"
// @Success     200 {object} dayDetailResp
// @Failure     400 {object} response.Resp "Invalid date key"
// @Router      /api/v1/days/{date} [GET]
func (h *handler) DayDetail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DayDetail(ctx, c.Param("date"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DayDetail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayDetailResp(output))
}

// WeeklyRollup godoc
// @Summary     Weekly rollup
// @Description One row per day for the trailing seven days ending at the given date.
// @Tags        Days
// @Produce     json
// @Param       date path string true "End date key (YYYY-MM-DD)"
// @Success     200 {object} weeklyRollupResp
// @Failure     400 {object} response.Resp "Invalid date key"
// @Router      /api/v1/days/{date}/rollup [GET]
func (h *handler) WeeklyRollup(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.WeeklyRollup(ctx, c.Param("date"))
	if err != nil {
		h.l.Errorf(ctx, "uc.WeeklyRollup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWeeklyRollupResp(output))
}

// IntentionHistory godoc
// @Summary     Intention history
// @Description Fixed seven-day series for one intention, ending today or at ?end=YYYY-MM-DD.
// @Tags        Intentions
// @Produce     json
// @Param       id  path  string true  "Intention ID"
// @Param       end query string false "End date key (default: today)"
// @Success     200 {object} intentionHistoryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/intentions/{id}/history [GET]
func (h *handler) IntentionHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingParam)
		return
	}

	output, err := h.uc.IntentionHistory(ctx, id, c.Query("end"))
	if err != nil {
		h.l.Errorf(ctx, "uc.IntentionHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIntentionHistoryResp(output))
}

// SetOverride godoc
// @Summary     Set a manual override
// @Description Replaces the computed total for one (date, intention) pair. Setting again overwrites.
// @Tags        Days
// @Accept      json
// @Produce     json
// @Param       date        path string         true "Date key (YYYY-MM-DD)"
// @Param       intentionID path string         true "Intention ID"
// @Param       body        body setOverrideReq true "Override amount"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/days/{date}/overrides/{intentionID} [PUT]
func (h *handler) SetOverride(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetOverrideReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetOverride(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SetOverride: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ClearOverride godoc
// @Summary     Clear a manual override
// @Description Removes the override, restoring entry-derived totals.
// @Tags        Days
// @Produce     json
// @Param       date        path string true "Date key (YYYY-MM-DD)"
// @Param       intentionID path string true "Intention ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/days/{date}/overrides/{intentionID} [DELETE]
func (h *handler) ClearOverride(c *gin.Context) {
	ctx := c.Request.Context()

	dateKey := c.Param("date")
	intentionID := c.Param("intentionID")
	if dateKey == "" || intentionID == "" {
		response.Error(c, errMissingParam)
		return
	}

	if err := h.uc.ClearOverride(ctx, dateKey, intentionID); err != nil {
		h.l.Errorf(ctx, "uc.ClearOverride: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
