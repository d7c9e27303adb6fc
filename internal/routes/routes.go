package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/adotapet/adota-pet-api/internal/audit"
	"github.com/adotapet/adota-pet-api/internal/config"
	"github.com/adotapet/adota-pet-api/internal/handlers"
	"github.com/adotapet/adota-pet-api/internal/identity"
	infraRepo "github.com/adotapet/adota-pet-api/internal/infra/repository"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	"github.com/adotapet/adota-pet-api/internal/storage"
	ucauth "github.com/adotapet/adota-pet-api/internal/usecase/auth"
	ucblog "github.com/adotapet/adota-pet-api/internal/usecase/blog"
	uclistings "github.com/adotapet/adota-pet-api/internal/usecase/listings"
	ucpets "github.com/adotapet/adota-pet-api/internal/usecase/pets"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	usersRepo := infraRepo.NewUsersGormRepository(db)
	petsRepo := infraRepo.NewPetsGormRepository(db)
	blogRepo := infraRepo.NewBlogGormRepository(db)
	listingsRepo := infraRepo.NewListingsGormRepository(db)

	uploader := storage.NewS3Uploader(cfg)
	provider := identity.NewJWTProvider(cfg.JWTSecret)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	listAdoptionUC := ucpets.NewListAdoptionPets(petsRepo)
	listMyPetsUC := ucpets.NewListMyPets(petsRepo)
	getPetUC := ucpets.NewGetPet(petsRepo)
	addPetUC := ucpets.NewAddNewPet(petsRepo, uploader, auditDispatcher)
	updatePetUC := ucpets.NewUpdatePetDetails(petsRepo, uploader, auditDispatcher)
	deletePetUC := ucpets.NewDeletePet(petsRepo, auditDispatcher)
	adoptPetUC := ucpets.NewMarkPetAsAdopted(petsRepo, auditDispatcher)
	addVaccineUC := ucpets.NewAddVaccineToPet(petsRepo, auditDispatcher)

	listPostsUC := ucblog.NewListPosts(blogRepo)
	addPostUC := ucblog.NewAddNewPost(blogRepo, uploader, auditDispatcher)
	updatePostUC := ucblog.NewUpdatePostDetails(blogRepo, uploader, auditDispatcher)
	deletePostUC := ucblog.NewDeletePost(blogRepo, auditDispatcher)
	toggleLikeUC := ucblog.NewTogglePostLike(blogRepo)
	addCommentUC := ucblog.NewAddComment(blogRepo)

	listServicesUC := uclistings.NewListServices(listingsRepo)
	addServiceUC := uclistings.NewAddService(listingsRepo, auditDispatcher)
	updateServiceUC := uclistings.NewUpdateService(listingsRepo, auditDispatcher)
	deleteServiceUC := uclistings.NewDeleteService(listingsRepo, auditDispatcher)

	registerUC := ucauth.NewRegisterUser(usersRepo, uploader, auditDispatcher)
	loginUC := ucauth.NewLoginUser(usersRepo, provider)
	updateProfileUC := ucauth.NewUpdateProfile(usersRepo, uploader)

	// ======================================================
	// HANDLERS
	// ======================================================
	petHandler := handlers.NewPetHandler(
		listAdoptionUC,
		listMyPetsUC,
		getPetUC,
		addPetUC,
		updatePetUC,
		deletePetUC,
		adoptPetUC,
		addVaccineUC,
	)

	blogHandler := handlers.NewBlogHandler(
		listPostsUC,
		addPostUC,
		updatePostUC,
		deletePostUC,
		toggleLikeUC,
		addCommentUC,
	)

	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		addServiceUC,
		updateServiceUC,
		deleteServiceUC,
	)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(usersRepo, updateProfileUC, db)

	requireAuth := middleware.RequireAuth(provider, usersRepo)
	photoUpload := middleware.PhotoUpload()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", photoUpload, authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		authAPI := api.Group("/auth")
		authAPI.Use(requireAuth)
		{
			authAPI.GET("/me", meHandler.GetMe)
			authAPI.PUT("/me", photoUpload, meHandler.UpdateMe)
		}

		// ------------------------------
		// PETS
		// ------------------------------
		api.GET("/pets/adoption", petHandler.ListAdoption)
		api.GET("/pets/:petId", petHandler.Get)

		pets := api.Group("/pets")
		pets.Use(requireAuth)
		{
			pets.GET("/mypets", petHandler.ListMine)
			pets.POST("", photoUpload, petHandler.Create)
			pets.PUT("/:petId", photoUpload, petHandler.Update)
			pets.DELETE("/:petId", petHandler.Delete)
			pets.PUT("/:petId/adopt", petHandler.Adopt)
			pets.POST("/:petId/vaccines", petHandler.AddVaccine)
		}

		// ------------------------------
		// BLOG
		// ------------------------------
		api.GET("/blog", blogHandler.List)

		blog := api.Group("/blog")
		blog.Use(requireAuth)
		{
			blog.POST("", photoUpload, blogHandler.Create)
			blog.PUT("/:postId", photoUpload, blogHandler.Update)
			blog.DELETE("/:postId", blogHandler.Delete)
			blog.POST("/:postId/like", blogHandler.ToggleLike)
			blog.POST("/:postId/comment", blogHandler.AddComment)
		}

		// ------------------------------
		// SERVICES
		// ------------------------------
		// Read access gates contact fields on Bearer-header presence only.
		api.GET("/services", middleware.OptionalBearerPresence(), serviceHandler.List)

		services := api.Group("/services")
		services.Use(requireAuth)
		{
			services.POST("", serviceHandler.Create)
			services.PUT("/:serviceId", serviceHandler.Update)
			services.DELETE("/:serviceId", serviceHandler.Delete)
		}

		// ------------------------------
		// ACTIVITY
		// ------------------------------
		api.GET("/me/activity", requireAuth, meHandler.Activity)
	}
}
