package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/config"
	"github.com/jwchung/staffdesk/middlewares"
	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/notifications"
	"github.com/jwchung/staffdesk/router"
	"github.com/jwchung/staffdesk/utils"
	"github.com/jwchung/staffdesk/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	hub := ws.NewHub()
	dispatcher := notifications.NewDispatcher(
		notifications.NewEmailChannel(config.LoadSMTP()),
		notifications.NewWebSocketChannel(hub),
	)

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, hub, dispatcher)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Company{},
		&models.Brand{},
		&models.Branch{},
		&models.GroupType{},
		&models.Group{},
		&models.User{},
		&models.Assignment{},
		&models.AssignmentAssignee{},
		&models.Comment{},
		&models.ChecklistTemplate{},
		&models.TemplateItem{},
		&models.DailyChecklist{},
		&models.Attendance{},
		&models.Notice{},
		&models.NoticeConfirmation{},
		&models.Feedback{},
		&models.Opinion{},
		&models.Notification{},
		&models.UploadedFile{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
