package routes

import (
	"moap_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathDashboard     = "/dashboard"
	PathMaterials     = "/materials"
	PathUsers         = "/users"
	PathObras         = "/obras"
	PathBudgets       = "/budgets"
	PathVisitas       = "/visitas"
	PathConcursos     = "/concursos"
	PathConversations = "/conversations"
	PathNotifications = "/notifications"
	PathInvitations   = "/invitations"
	PathAdmin         = "/admin"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, materialHandler *handlers.MaterialHandler, userHandler *handlers.UserHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", materialHandler.ListMaterials)
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("/categories", materialHandler.ListCategories)
		materials.POST("/sync", materialHandler.SyncPrices)
		materials.GET("/:id", materialHandler.GetMaterial)
		materials.PATCH("/:id", materialHandler.UpdateMaterial)
		materials.DELETE("/:id", materialHandler.DeleteMaterial)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, obraHandler *handlers.ObraHandler, budgetHandler *handlers.BudgetHandler, visitaHandler *handlers.VisitaHandler) {
	obras := rg.Group(PathObras)
	{
		obras.GET("", obraHandler.ListObras)
		obras.POST("", obraHandler.CreateObra)
		obras.GET("/regions", obraHandler.ListRegions)
		obras.GET("/:id", obraHandler.GetObra)
		obras.GET("/:id/overview", obraHandler.GetObraOverview)
		obras.PATCH("/:id", obraHandler.UpdateObra)
		obras.DELETE("/:id", obraHandler.DeleteObra)
		obras.POST("/:id/assign", obraHandler.AssignUser)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.POST("/:id/items", budgetHandler.AddItem)
		budgets.PATCH("/:id/items/:item_id", budgetHandler.UpdateItem)
		budgets.DELETE("/:id/items/:item_id", budgetHandler.RemoveItem)
		budgets.POST("/:id/duplicate", budgetHandler.DuplicateBudget)
		budgets.PATCH("/:id/finalize", budgetHandler.FinalizeBudget)
		budgets.PATCH("/:id/send", budgetHandler.SendBudget)
		budgets.GET("/:id/export", budgetHandler.ExportBudget)
	}

	visitas := rg.Group(PathVisitas)
	{
		visitas.GET("", visitaHandler.ListVisitas)
		visitas.POST("", visitaHandler.CreateVisita)
		visitas.GET("/upcoming", visitaHandler.ListUpcoming)
		visitas.GET("/:id", visitaHandler.GetVisita)
		visitas.PATCH("/:id", visitaHandler.UpdateVisita)
		visitas.DELETE("/:id", visitaHandler.DeleteVisita)
	}
}

func addCollaborationRoutes(
	rg *gin.RouterGroup,
	concursoHandler *handlers.ConcursoHandler,
	messageHandler *handlers.MessageHandler,
	notificationHandler *handlers.NotificationHandler,
	invitationHandler *handlers.InvitationHandler,
) {
	concursos := rg.Group(PathConcursos)
	{
		concursos.GET("", concursoHandler.ListConcursos)
		concursos.GET("/:id", concursoHandler.GetConcurso)
		concursos.POST("/:id/invitations", concursoHandler.InviteUsers)
	}

	conversations := rg.Group(PathConversations)
	{
		conversations.GET("", messageHandler.ListConversations)
		conversations.GET("/unread", messageHandler.UnreadCount)
		conversations.GET("/:id/messages", messageHandler.ListMessages)
		conversations.POST("/:id/messages", messageHandler.SendMessage)
		conversations.PATCH("/:id/read", messageHandler.MarkRead)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.POST("", notificationHandler.CreateNotification)
		notifications.DELETE("", notificationHandler.ClearNotifications)
		notifications.GET("/unread", notificationHandler.UnreadCount)
		notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	}

	invitations := rg.Group(PathInvitations)
	{
		invitations.GET("", invitationHandler.ListInvitations)
		invitations.POST("", invitationHandler.SendInvitation)
		invitations.POST("/bulk", invitationHandler.SendBulkInvitations)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.SnapshotHandler) {
	snapshot := rg.Group(PathAdmin + "/snapshot")
	{
		snapshot.GET("", h.ExportSnapshot)
		snapshot.PUT("", h.ImportSnapshot)
		snapshot.POST("", h.FlushSnapshot)
		snapshot.POST("/reset", h.ResetSnapshot)
	}
}
