package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	checkIns := rg.Group("/check-ins")
	{
		checkIns.POST("", h.ProcessCheckIn)
	}

	intentions := rg.Group("/intentions")
	{
		intentions.POST("/parse", h.ParseIntentions)
		intentions.POST("", h.CreateIntention)
		intentions.GET("", h.ListIntentions)
		intentions.PUT("/:id", h.UpdateIntention)
		intentions.DELETE("/:id", h.DeactivateIntention)
		intentions.GET("/:id/history", h.IntentionHistory)
	}

	sets := rg.Group("/intention-sets")
	{
		sets.POST("", h.SaveIntentionSet)
	}

	days := rg.Group("/days")
	{
		days.GET("/:date", h.DayDetail)
		days.GET("/:date/rollup", h.WeeklyRollup)
		days.PUT("/:date/overrides/:intentionID", h.SetOverride)
		days.DELETE("/:date/overrides/:intentionID", h.ClearOverride)
	}
}
