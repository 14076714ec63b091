package controllers

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

// 10 MB per upload.
const maxUploadSize = 10 << 20

var folderPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type FileController struct {
	Service *services.FileService
}

func NewFileController(service *services.FileService) *FileController {
	return &FileController{Service: service}
}

func (fc *FileController) UploadFile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	folder := c.DefaultPostForm("folder", "general")
	if !folderPattern.MatchString(folder) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid folder name"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("file is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		utils.RespondError(c, http.StatusBadRequest, errors.New("file exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	record, err := fc.Service.Upload(content, fileHeader.Filename, folder, userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "File uploaded", record)
}

func (fc *FileController) GetMyFiles(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	files, err := fc.Service.ListByUser(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My files", files)
}
