package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/controllers"
	"github.com/jwchung/staffdesk/models"
)

func setupTestDBForUsers(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Company{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Create(&models.Company{Name: "Acme Food Group"})
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	userCtrl := controllers.NewUserController(db)
	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesPendingUser(t *testing.T) {
	db := setupTestDBForUsers(t)
	r := setupUserRouter(db)

	w := postJSON(t, r, "/register", map[string]interface{}{
		"email":      "new@example.com",
		"login_id":   "newstaff",
		"full_name":  "New Staff",
		"password":   "longenough",
		"company_id": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.Equal(t, models.RoleStaff, user.Role)
	// Password is stored hashed.
	assert.NotEqual(t, "longenough", user.Password)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := setupTestDBForUsers(t)
	r := setupUserRouter(db)

	w := postJSON(t, r, "/register", map[string]interface{}{
		"email":      "new@example.com",
		"login_id":   "newstaff",
		"full_name":  "New Staff",
		"password":   "short",
		"company_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginPendingUserRejected(t *testing.T) {
	db := setupTestDBForUsers(t)
	r := setupUserRouter(db)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Email: "pending@example.com", LoginID: "pending", FullName: "Pending",
		Password: string(hashed), Role: models.RoleStaff, Status: models.UserStatusPending, CompanyID: 1,
	})

	w := postJSON(t, r, "/login", map[string]string{
		"email":    "pending@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginActiveUserReturnsToken(t *testing.T) {
	db := setupTestDBForUsers(t)
	r := setupUserRouter(db)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Email: "active@example.com", LoginID: "active", FullName: "Active",
		Password: string(hashed), Role: models.RoleStaff, Status: models.UserStatusActive, CompanyID: 1,
	})

	w := postJSON(t, r, "/login", map[string]string{
		"email":    "active@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.NotEmpty(t, resp.Data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDBForUsers(t)
	r := setupUserRouter(db)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Email: "active@example.com", LoginID: "active", FullName: "Active",
		Password: string(hashed), Role: models.RoleStaff, Status: models.UserStatusActive, CompanyID: 1,
	})

	w := postJSON(t, r, "/login", map[string]string{
		"email":    "active@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
