package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

// OrganizationController covers the company hierarchy below the company
// itself: brands, branches, group types and groups.
type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

// -- Brands --

func (oc *OrganizationController) GetAllBrands(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var brands []models.Brand
	if err := oc.DB.Where("company_id = ?", companyID).Find(&brands).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All brands", brands)
}

func (oc *OrganizationController) CreateBrand(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	brand := models.Brand{CompanyID: companyID, Name: body.Name}
	if err := oc.DB.Create(&brand).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Brand created", brand)
}

func (oc *OrganizationController) UpdateBrand(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("brand_id"))

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var brand models.Brand
	if err := oc.DB.First(&brand, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := oc.DB.Model(&brand).Update("name", body.Name).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Brand updated", brand)
}

func (oc *OrganizationController) DeleteBrand(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("brand_id"))

	if err := oc.DB.Delete(&models.Brand{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Brand deleted", gin.H{"brand_id": id})
}

// -- Branches --

func (oc *OrganizationController) GetAllBranches(c *gin.Context) {
	query := oc.DB
	if brandID := c.Query("brand_id"); brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}

	var branches []models.Branch
	if err := query.Find(&branches).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All branches", branches)
}

func (oc *OrganizationController) CreateBranch(c *gin.Context) {
	var body struct {
		BrandID uint    `json:"brand_id" binding:"required"`
		Name    string  `json:"name" binding:"required"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branch := models.Branch{BrandID: body.BrandID, Name: body.Name, Address: body.Address}
	if err := oc.DB.Create(&branch).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Branch created", branch)
}

func (oc *OrganizationController) DeleteBranch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("branch_id"))

	if err := oc.DB.Delete(&models.Branch{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch deleted", gin.H{"branch_id": id})
}

// -- Group types --

func (oc *OrganizationController) GetAllGroupTypes(c *gin.Context) {
	query := oc.DB
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}

	var groupTypes []models.GroupType
	if err := query.Order("priority ASC").Find(&groupTypes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All group types", groupTypes)
}

func (oc *OrganizationController) CreateGroupType(c *gin.Context) {
	var body struct {
		BranchID uint   `json:"branch_id" binding:"required"`
		Priority int    `json:"priority"`
		Label    string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	groupType := models.GroupType{BranchID: body.BranchID, Priority: body.Priority, Label: body.Label}
	if err := oc.DB.Create(&groupType).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Group type created", groupType)
}

func (oc *OrganizationController) DeleteGroupType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("group_type_id"))

	if err := oc.DB.Delete(&models.GroupType{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Group type deleted", gin.H{"group_type_id": id})
}

// -- Groups --

func (oc *OrganizationController) GetAllGroups(c *gin.Context) {
	query := oc.DB
	if groupTypeID := c.Query("group_type_id"); groupTypeID != "" {
		query = query.Where("group_type_id = ?", groupTypeID)
	}

	var groups []models.Group
	if err := query.Find(&groups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All groups", groups)
}

func (oc *OrganizationController) CreateGroup(c *gin.Context) {
	var body struct {
		GroupTypeID uint   `json:"group_type_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	group := models.Group{GroupTypeID: body.GroupTypeID, Name: body.Name}
	if err := oc.DB.Create(&group).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Group created", group)
}

func (oc *OrganizationController) DeleteGroup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("group_id"))

	if err := oc.DB.Delete(&models.Group{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Group deleted", gin.H{"group_id": id})
}
