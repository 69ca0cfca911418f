package routes

import (
	"github.com/appleman9709/bcb-with-db/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *controllers.Handlers) {
	r.GET("/health", h.Health.Check)

	r.GET("/families", h.Family.ListFamilies)
	r.POST("/families", h.Family.CreateFamily)

	family := r.Group("/family/:id")
	{
		family.GET("/dashboard", h.Dashboard.GetDashboard)
		family.GET("/history", h.History.GetHistory)

		family.GET("/members", h.Family.ListMembers)
		family.POST("/members", h.Family.AddMember)

		family.GET("/settings", h.Settings.GetSettings)
		family.PUT("/settings", h.Settings.UpdateSettings)

		family.POST("/feedings", h.Events.AddFeeding)
		family.POST("/diapers", h.Events.AddDiaper)
		family.POST("/baths", h.Events.AddBath)
		family.POST("/activities", h.Events.AddActivity)

		family.POST("/sleep/start", h.Sleep.StartSleep)
		family.POST("/sleep/end", h.Sleep.EndSleep)
	}
}
