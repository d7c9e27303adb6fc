package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/adotapet/adota-pet-api/internal/domain/users"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/httpresp"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	"github.com/adotapet/adota-pet-api/internal/models"
	ucauth "github.com/adotapet/adota-pet-api/internal/usecase/auth"
	"github.com/adotapet/adota-pet-api/internal/validators"
)

type MeHandler struct {
	users         domain.Repository
	updateProfile *ucauth.UpdateProfile
	db            *gorm.DB
}

func NewMeHandler(users domain.Repository, updateProfile *ucauth.UpdateProfile, db *gorm.DB) *MeHandler {
	return &MeHandler{
		users:         users,
		updateProfile: updateProfile,
		db:            db,
	}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name  *string `form:"name" binding:"omitempty,min=2,max=100"`
	Email *string `form:"email" binding:"omitempty,email"`
	Phone *string `form:"phone" binding:"omitempty,max=20"`
}

// --------- Handlers ---------

func (h *MeHandler) GetMe(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	user, err := h.users.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			middleware.Fail(c, httperr.NotFound("user_not_found", "User not found."))
			return
		}
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Profile retrieved.", user)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	photo := middleware.UploadFrom(c)

	if err := validators.AtLeastOneField(
		req.Name != nil,
		req.Email != nil,
		req.Phone != nil,
		photo != nil,
	); err != nil {
		middleware.Fail(c, err)
		return
	}

	user, err := h.updateProfile.Execute(c.Request.Context(), ucauth.UpdateProfileInput{
		UserID: identity.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Photo:  photo,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Profile updated.", user)
}

// Activity lists the caller's own audit trail, newest first.
func (h *MeHandler) Activity(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("user_id = ?", identity.UserID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		middleware.Fail(c, httperr.Internal("activity_count_failed", "Could not count activity.", err))
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		middleware.Fail(c, httperr.Internal("activity_list_failed", "Could not list activity.", err))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	httpresp.OK(c, "Activity retrieved.", httpresp.Page{
		Data:       logs,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	})
}
