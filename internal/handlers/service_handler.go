package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/httpresp"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	uclistings "github.com/adotapet/adota-pet-api/internal/usecase/listings"
	"github.com/adotapet/adota-pet-api/internal/validators"
)

type ServiceHandler struct {
	list   *uclistings.ListServices
	create *uclistings.AddService
	update *uclistings.UpdateService
	remove *uclistings.DeleteService
}

func NewServiceHandler(
	list *uclistings.ListServices,
	create *uclistings.AddService,
	update *uclistings.UpdateService,
	remove *uclistings.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		create: create,
		update: update,
		remove: remove,
	}
}

// --------- Requests ---------

type ServiceFilterQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=vet sitter walker transport"`
	Search   string `form:"search" binding:"omitempty,max=100"`
}

type CreateServiceRequest struct {
	Category     string   `json:"category" binding:"required,oneof=vet sitter walker transport"`
	Name         string   `json:"name" binding:"required,min=2,max=100"`
	Professional string   `json:"professional" binding:"required,min=2,max=100"`
	Phone        string   `json:"phone" binding:"required,max=20"`
	Address      string   `json:"address" binding:"required,max=200"`
	Description  string   `json:"description" binding:"omitempty,max=1000"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,longitude"`
}

type UpdateServiceRequest struct {
	Category     *string  `json:"category" binding:"omitempty,oneof=vet sitter walker transport"`
	Name         *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Professional *string  `json:"professional" binding:"omitempty,min=2,max=100"`
	Phone        *string  `json:"phone" binding:"omitempty,max=20"`
	Address      *string  `json:"address" binding:"omitempty,max=200"`
	Description  *string  `json:"description" binding:"omitempty,max=1000"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var q ServiceFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	services, err := h.list.Execute(
		c.Request.Context(),
		domain.Filter{Category: q.Category, Search: q.Search},
		middleware.BearerPresent(c),
	)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Services retrieved.", services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), uclistings.AddServiceInput{
		OwnerID:      identity.UserID,
		Category:     req.Category,
		Name:         req.Name,
		Professional: req.Professional,
		Phone:        req.Phone,
		Address:      req.Address,
		Description:  req.Description,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Created(c, "Service created.", svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	serviceID, err := validators.IDParam(c, "serviceId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	if err := validators.AtLeastOneField(
		req.Category != nil,
		req.Name != nil,
		req.Professional != nil,
		req.Phone != nil,
		req.Address != nil,
		req.Description != nil,
		req.Latitude != nil,
		req.Longitude != nil,
	); err != nil {
		middleware.Fail(c, err)
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), uclistings.UpdateServiceInput{
		ServiceID:    serviceID,
		OwnerID:      identity.UserID,
		Category:     req.Category,
		Name:         req.Name,
		Professional: req.Professional,
		Phone:        req.Phone,
		Address:      req.Address,
		Description:  req.Description,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Service updated.", svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	serviceID, err := validators.IDParam(c, "serviceId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), serviceID, identity.UserID); err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Message(c, "Service deleted.")
}
