package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/config"
	"github.com/jwchung/staffdesk/controllers"
	"github.com/jwchung/staffdesk/middlewares"
	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/notifications"
	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/ws"
)

// SetupRouter wires services and controllers onto a gin engine. The hub
// and dispatcher are built by the caller so tests can substitute their
// own channels.
func SetupRouter(db *gorm.DB, hub *ws.Hub, dispatcher *notifications.Dispatcher) *gin.Engine {
	r := gin.Default()

	r.Static("/uploads", config.UploadDir())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	notificationSvc := services.NewNotificationService(db, dispatcher)
	assignmentSvc := services.NewAssignmentService(db, notificationSvc)
	commentSvc := services.NewCommentService(db, notificationSvc)
	feedbackSvc := services.NewFeedbackService(db, notificationSvc)
	checklistSvc := services.NewDailyChecklistService(db)
	attendanceSvc := services.NewAttendanceService(db)
	dashboardSvc := services.NewDashboardService(db)
	storage := services.NewLocalStorage(config.UploadDir(), "/uploads")
	fileSvc := services.NewFileService(db, storage)

	userCtrl := controllers.NewUserController(db)
	adminCtrl := controllers.NewAdminController(db)
	orgCtrl := controllers.NewOrganizationController(db)
	templateCtrl := controllers.NewTemplateController(db)
	assignmentCtrl := controllers.NewAssignmentController(assignmentSvc)
	commentCtrl := controllers.NewCommentController(db, commentSvc)
	checklistCtrl := controllers.NewDailyChecklistController(checklistSvc)
	attendanceCtrl := controllers.NewAttendanceController(attendanceSvc)
	noticeCtrl := controllers.NewNoticeController(db)
	opinionCtrl := controllers.NewOpinionController(db)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	notificationCtrl := controllers.NewNotificationController(notificationSvc, hub)
	fileCtrl := controllers.NewFileController(fileSvc)
	dashboardCtrl := controllers.NewDashboardController(dashboardSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.POST("/logout", userCtrl.Logout)
	api.GET("/profile", userCtrl.GetProfile)
	api.PATCH("/profile", userCtrl.UpdateProfile)
	api.POST("/profile/change-password", userCtrl.ChangePassword)

	api.GET("/dashboard/summary", dashboardCtrl.GetSummary)

	// ORGANIZATION
	api.GET("/brands", orgCtrl.GetAllBrands)
	api.GET("/branches", orgCtrl.GetAllBranches)
	api.GET("/group-types", orgCtrl.GetAllGroupTypes)
	api.GET("/groups", orgCtrl.GetAllGroups)

	// ASSIGNMENTS
	api.GET("/assignments", assignmentCtrl.GetAllAssignments)
	api.GET("/assignments/my", assignmentCtrl.GetMyAssignments)
	api.GET("/assignments/:assignment_id", assignmentCtrl.GetAssignmentByID)
	api.POST("/assignments", assignmentCtrl.CreateAssignment)
	api.PATCH("/assignments/:assignment_id", assignmentCtrl.UpdateAssignment)
	api.PATCH("/assignments/:assignment_id/status", assignmentCtrl.UpdateAssignmentStatus)
	api.DELETE("/assignments/:assignment_id", assignmentCtrl.DeleteAssignment)
	api.POST("/assignments/:assignment_id/assignees", assignmentCtrl.AddAssignees)
	api.DELETE("/assignments/:assignment_id/assignees/:user_id", assignmentCtrl.RemoveAssignee)

	// COMMENTS
	api.GET("/assignments/:assignment_id/comments", commentCtrl.GetComments)
	api.POST("/assignments/:assignment_id/comments", commentCtrl.CreateComment)
	api.DELETE("/comments/:comment_id", commentCtrl.DeleteComment)

	// CHECKLIST TEMPLATES
	api.GET("/checklist-templates", templateCtrl.GetAllTemplates)
	api.GET("/checklist-templates/:template_id", templateCtrl.GetTemplateByID)

	// DAILY CHECKLISTS
	api.GET("/daily-checklists", checklistCtrl.GetChecklists)
	api.GET("/daily-checklists/:checklist_id", checklistCtrl.GetChecklistByID)
	api.POST("/daily-checklists/generate", checklistCtrl.GenerateChecklist)
	api.PATCH("/daily-checklists/:checklist_id/items/:item_index", checklistCtrl.UpdateChecklistItem)

	// ATTENDANCE
	api.GET("/attendance/today", attendanceCtrl.GetTodayStatus)
	api.POST("/attendance/clock-in", attendanceCtrl.ClockIn)
	api.POST("/attendance/clock-out", attendanceCtrl.ClockOut)
	api.GET("/attendance/history", attendanceCtrl.GetMonthlyHistory)

	// NOTICES
	api.GET("/notices", noticeCtrl.GetNotices)
	api.GET("/notices/:notice_id", noticeCtrl.GetNoticeByID)
	api.POST("/notices/:notice_id/confirm", noticeCtrl.ConfirmNotice)

	// OPINIONS
	api.GET("/opinions", opinionCtrl.GetOpinions)
	api.POST("/opinions", opinionCtrl.CreateOpinion)

	// FEEDBACK
	api.GET("/feedbacks", feedbackCtrl.GetFeedbacks)
	api.POST("/feedbacks", feedbackCtrl.CreateFeedback)

	// NOTIFICATIONS
	api.GET("/notifications", notificationCtrl.GetNotifications)
	api.PATCH("/notifications/:notification_id/read", notificationCtrl.MarkNotificationRead)
	api.PATCH("/notifications/read-all", notificationCtrl.MarkAllNotificationsRead)

	// FILES
	api.POST("/files", fileCtrl.UploadFile)
	api.GET("/files/my", fileCtrl.GetMyFiles)

	// ----------------------------------------------------------------
	//                      MANAGER / ADMIN ROUTES
	// ----------------------------------------------------------------
	manager := api.Group("/")
	manager.Use(middlewares.RequireRole(models.RoleManager))
	{
		manager.POST("/brands", orgCtrl.CreateBrand)
		manager.PATCH("/brands/:brand_id", orgCtrl.UpdateBrand)
		manager.POST("/branches", orgCtrl.CreateBranch)
		manager.POST("/group-types", orgCtrl.CreateGroupType)
		manager.POST("/groups", orgCtrl.CreateGroup)

		manager.POST("/checklist-templates", templateCtrl.CreateTemplate)
		manager.PATCH("/checklist-templates/:template_id", templateCtrl.UpdateTemplate)
		manager.POST("/checklist-templates/:template_id/deactivate", templateCtrl.DeactivateTemplate)

		manager.POST("/notices", noticeCtrl.CreateNotice)
		manager.PATCH("/notices/:notice_id", noticeCtrl.UpdateNotice)
		manager.DELETE("/notices/:notice_id", noticeCtrl.DeleteNotice)

		manager.PATCH("/opinions/:opinion_id/status", opinionCtrl.UpdateOpinionStatus)
	}

	admin := api.Group("/admin")
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/staff/pending", adminCtrl.GetPendingStaff)
		admin.POST("/staff/:user_id/approve", adminCtrl.ApproveStaff)
		admin.POST("/staff/:user_id/reject", adminCtrl.RejectStaff)

		admin.GET("/company", adminCtrl.GetCompany)
		admin.PATCH("/company", adminCtrl.UpdateCompany)
		admin.GET("/compliance/summary", adminCtrl.GetComplianceSummary)

		admin.DELETE("/brands/:brand_id", orgCtrl.DeleteBrand)
		admin.DELETE("/branches/:branch_id", orgCtrl.DeleteBranch)
		admin.DELETE("/group-types/:group_type_id", orgCtrl.DeleteGroupType)
		admin.DELETE("/groups/:group_id", orgCtrl.DeleteGroup)

		admin.GET("/attendance/export", attendanceCtrl.ExportMonthCSV)
	}

	// WebSocket endpoint with token passed as a query parameter.
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/notifications", notificationCtrl.Stream)
	}

	return r
}
