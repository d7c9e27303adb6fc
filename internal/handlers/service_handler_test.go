package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	"github.com/adotapet/adota-pet-api/internal/models"
	uclistings "github.com/adotapet/adota-pet-api/internal/usecase/listings"
)

// -------------------------
// Test doubles
// -------------------------

type fakeListingsRepo struct {
	services []models.Service
}

func (r *fakeListingsRepo) List(_ context.Context, f domain.Filter) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeListingsRepo) GetByID(context.Context, uint) (*models.Service, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeListingsRepo) Create(context.Context, *models.Service) error { return nil }
func (r *fakeListingsRepo) Update(context.Context, *models.Service) error { return nil }
func (r *fakeListingsRepo) DeleteOwned(context.Context, uint, uint) (int64, error) {
	return 0, nil
}

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func f64(v float64) *float64 { return &v }

func servicesEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &fakeListingsRepo{services: []models.Service{
		{
			ID: 1, OwnerID: 1,
			Category: "vet", Name: "Happy Paws", Professional: "Dr. Silva",
			Phone: "+55 11 99999-0001", Address: "Rua das Flores, 120",
			Latitude: f64(-23.55), Longitude: f64(-46.63),
		},
		{
			ID: 2, OwnerID: 2,
			Category: "walker", Name: "Dog Trotters", Professional: "Joana Lima",
			Phone: "+55 11 98888-0002", Address: "Av. Paulista, 900",
		},
	}}

	dispatcher := audit.NewDispatcher(nopSink{}, zap.NewNop())

	handler := NewServiceHandler(
		uclistings.NewListServices(repo),
		uclistings.NewAddService(repo, dispatcher),
		uclistings.NewUpdateService(repo, dispatcher),
		uclistings.NewDeleteService(repo, dispatcher),
	)

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), false))
	r.GET("/api/services", middleware.OptionalBearerPresence(), handler.List)
	return r
}

func listServices(t *testing.T, r *gin.Engine, path, authHeader string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env.Data
}

// -------------------------
// Tests
// -------------------------

func TestListServicesAnonymousGetsRedactedContact(t *testing.T) {
	code, data := listServices(t, servicesEngine(), "/api/services", "")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, data, 2)

	for _, svc := range data {
		assert.Equal(t, "login required", svc["phone"])
		assert.Equal(t, "login required", svc["address"])
		assert.Nil(t, svc["latitude"])
		assert.Nil(t, svc["longitude"])
		assert.NotEmpty(t, svc["name"])
	}
}

func TestListServicesBearerHeaderRevealsContact(t *testing.T) {
	// Header presence alone lifts redaction; the token is never verified on
	// this route.
	code, data := listServices(t, servicesEngine(), "/api/services", "Bearer whatever")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, data, 2)

	byName := map[string]map[string]any{}
	for _, svc := range data {
		byName[svc["name"].(string)] = svc
	}

	paws := byName["Happy Paws"]
	require.NotNil(t, paws)
	assert.Equal(t, "+55 11 99999-0001", paws["phone"])
	assert.Equal(t, "Rua das Flores, 120", paws["address"])
	require.NotNil(t, paws["latitude"])
	assert.InDelta(t, -23.55, paws["latitude"].(float64), 0.001)
}

func TestListServicesCategoryFilter(t *testing.T) {
	code, data := listServices(t, servicesEngine(), "/api/services?category=walker", "Bearer t")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, data, 1)
	assert.Equal(t, "Dog Trotters", data[0]["name"])
}

func TestListServicesRejectsUnknownCategory(t *testing.T) {
	code, _ := listServices(t, servicesEngine(), "/api/services?category=plumber", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListServicesEmptyResultIsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeListingsRepo{}
	dispatcher := audit.NewDispatcher(nopSink{}, zap.NewNop())
	handler := NewServiceHandler(
		uclistings.NewListServices(repo),
		uclistings.NewAddService(repo, dispatcher),
		uclistings.NewUpdateService(repo, dispatcher),
		uclistings.NewDeleteService(repo, dispatcher),
	)

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), false))
	r.GET("/api/services", middleware.OptionalBearerPresence(), handler.List)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
