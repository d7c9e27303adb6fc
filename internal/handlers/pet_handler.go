package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httpresp"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	ucpets "github.com/adotapet/adota-pet-api/internal/usecase/pets"
	"github.com/adotapet/adota-pet-api/internal/validators"
)

type PetHandler struct {
	listAdoption *ucpets.ListAdoptionPets
	listMine     *ucpets.ListMyPets
	get          *ucpets.GetPet
	create       *ucpets.AddNewPet
	update       *ucpets.UpdatePetDetails
	remove       *ucpets.DeletePet
	adopt        *ucpets.MarkPetAsAdopted
	addVaccine   *ucpets.AddVaccineToPet
}

func NewPetHandler(
	listAdoption *ucpets.ListAdoptionPets,
	listMine *ucpets.ListMyPets,
	get *ucpets.GetPet,
	create *ucpets.AddNewPet,
	update *ucpets.UpdatePetDetails,
	remove *ucpets.DeletePet,
	adopt *ucpets.MarkPetAsAdopted,
	addVaccine *ucpets.AddVaccineToPet,
) *PetHandler {
	return &PetHandler{
		listAdoption: listAdoption,
		listMine:     listMine,
		get:          get,
		create:       create,
		update:       update,
		remove:       remove,
		adopt:        adopt,
		addVaccine:   addVaccine,
	}
}

// --------- Requests ---------

type AdoptionFilterQuery struct {
	Species string `form:"species" binding:"omitempty,oneof=dog cat"`
	Size    string `form:"size" binding:"omitempty,oneof=small medium large"`
	Age     string `form:"age" binding:"omitempty,oneof=puppy young adult senior"`
	Search  string `form:"search" binding:"omitempty,max=100"`
}

type CreatePetRequest struct {
	Name        string `form:"name" binding:"required,min=2,max=100"`
	Species     string `form:"species" binding:"required,oneof=dog cat"`
	Breed       string `form:"breed" binding:"omitempty,max=100"`
	Age         string `form:"age" binding:"required,oneof=puppy young adult senior"`
	Size        string `form:"size" binding:"required,oneof=small medium large"`
	Gender      string `form:"gender" binding:"required,oneof=male female"`
	Type        string `form:"type" binding:"required,oneof=adoption personal"`
	Description string `form:"description" binding:"omitempty,max=1000"`
}

type UpdatePetRequest struct {
	Name        *string `form:"name" binding:"omitempty,min=2,max=100"`
	Species     *string `form:"species" binding:"omitempty,oneof=dog cat"`
	Breed       *string `form:"breed" binding:"omitempty,max=100"`
	Age         *string `form:"age" binding:"omitempty,oneof=puppy young adult senior"`
	Size        *string `form:"size" binding:"omitempty,oneof=small medium large"`
	Gender      *string `form:"gender" binding:"omitempty,oneof=male female"`
	Type        *string `form:"type" binding:"omitempty,oneof=adoption personal"`
	Description *string `form:"description" binding:"omitempty,max=1000"`
	PhotoURL    *string `form:"photoUrl" binding:"omitempty,max=500"`
}

type AddVaccineRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	NextDate *string `json:"nextDate" binding:"omitempty,datetime=2006-01-02"`
	Vet      *string `json:"vet" binding:"omitempty,max=100"`
	Notes    *string `json:"notes" binding:"omitempty,max=500"`
}

// --------- Handlers ---------

func (h *PetHandler) ListAdoption(c *gin.Context) {
	var q AdoptionFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	pets, err := h.listAdoption.Execute(c.Request.Context(), domain.AdoptionFilter{
		Species: q.Species,
		Size:    q.Size,
		Age:     q.Age,
		Search:  q.Search,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Adoption pets retrieved.", pets)
}

func (h *PetHandler) ListMine(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	pets, err := h.listMine.Execute(c.Request.Context(), identity.UserID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Your pets retrieved.", pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	petID, err := validators.IDParam(c, "petId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	pet, err := h.get.Execute(c.Request.Context(), petID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Pet retrieved.", pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req CreatePetRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	pet, err := h.create.Execute(c.Request.Context(), ucpets.AddNewPetInput{
		OwnerID:     identity.UserID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Size:        req.Size,
		Gender:      req.Gender,
		Type:        req.Type,
		Description: req.Description,
		Photo:       middleware.UploadFrom(c),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Created(c, "Pet created.", pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	petID, err := validators.IDParam(c, "petId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	photo := middleware.UploadFrom(c)

	if err := validators.AtLeastOneField(
		req.Name != nil,
		req.Species != nil,
		req.Breed != nil,
		req.Age != nil,
		req.Size != nil,
		req.Gender != nil,
		req.Type != nil,
		req.Description != nil,
		req.PhotoURL != nil,
		photo != nil,
	); err != nil {
		middleware.Fail(c, err)
		return
	}

	pet, err := h.update.Execute(c.Request.Context(), ucpets.UpdatePetDetailsInput{
		PetID:       petID,
		OwnerID:     identity.UserID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Size:        req.Size,
		Gender:      req.Gender,
		Type:        req.Type,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Photo:       photo,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Pet updated.", pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	petID, err := validators.IDParam(c, "petId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), petID, identity.UserID); err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Message(c, "Pet deleted.")
}

func (h *PetHandler) Adopt(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	petID, err := validators.IDParam(c, "petId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.adopt.Execute(c.Request.Context(), petID, identity.UserID); err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Message(c, "Pet marked as adopted.")
}

func (h *PetHandler) AddVaccine(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	petID, err := validators.IDParam(c, "petId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var req AddVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var nextDate *time.Time
	if req.NextDate != nil {
		nd, _ := time.Parse("2006-01-02", *req.NextDate)
		nextDate = &nd
	}

	vaccine, err := h.addVaccine.Execute(c.Request.Context(), ucpets.AddVaccineInput{
		PetID:    petID,
		OwnerID:  identity.UserID,
		Name:     req.Name,
		Date:     date,
		NextDate: nextDate,
		Vet:      req.Vet,
		Notes:    req.Notes,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Created(c, "Vaccine added.", vaccine)
}
