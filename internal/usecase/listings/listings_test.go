package listings

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
)

// -------------------------
// Test doubles
// -------------------------

type fakeListingsRepo struct {
	services map[uint]models.Service
	nextID   uint
}

func newFakeListingsRepo() *fakeListingsRepo {
	return &fakeListingsRepo{services: map[uint]models.Service{}, nextID: 1}
}

func (r *fakeListingsRepo) List(_ context.Context, f domain.Filter) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.Search != "" {
			term := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(s.Name), term) &&
				!strings.Contains(strings.ToLower(s.Professional), term) {
				continue
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeListingsRepo) GetByID(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *fakeListingsRepo) Create(_ context.Context, s *models.Service) error {
	s.ID = r.nextID
	r.nextID++
	r.services[s.ID] = *s
	return nil
}

func (r *fakeListingsRepo) Update(_ context.Context, s *models.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return errors.New("update: missing row")
	}
	r.services[s.ID] = *s
	return nil
}

func (r *fakeListingsRepo) DeleteOwned(_ context.Context, id, ownerID uint) (int64, error) {
	s, ok := r.services[id]
	if !ok || s.OwnerID != ownerID {
		return 0, nil
	}
	delete(r.services, id)
	return 1, nil
}

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

func f64(v float64) *float64 { return &v }

func seedService(t *testing.T, repo *fakeListingsRepo, ownerID uint, category, name string) *models.Service {
	t.Helper()
	uc := NewAddService(repo, testDispatcher())
	svc, err := uc.Execute(context.Background(), AddServiceInput{
		OwnerID:      ownerID,
		Category:     category,
		Name:         name,
		Professional: "Dr. Silva",
		Phone:        "+55 11 99999-0001",
		Address:      "Rua das Flores, 120",
		Description:  "house calls",
		Latitude:     f64(-23.55),
		Longitude:    f64(-46.63),
	})
	require.NoError(t, err)
	return svc
}

// -------------------------
// Listing / redaction
// -------------------------

func TestListServicesRedactsWithoutBearer(t *testing.T) {
	repo := newFakeListingsRepo()
	seedService(t, repo, 1, "vet", "Happy Paws")
	seedService(t, repo, 2, "walker", "Dog Trotters")

	uc := NewListServices(repo)

	services, err := uc.Execute(context.Background(), domain.Filter{}, false)
	require.NoError(t, err)
	require.Len(t, services, 2)
	for _, s := range services {
		assert.Equal(t, domain.RedactedPlaceholder, s.Phone)
		assert.Equal(t, domain.RedactedPlaceholder, s.Address)
		assert.Nil(t, s.Latitude)
		assert.Nil(t, s.Longitude)
		// Non-contact fields stay readable.
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Professional)
	}

	// Redaction happens on the response copy, not in storage.
	assert.Equal(t, "+55 11 99999-0001", repo.services[1].Phone)
}

func TestListServicesShowsContactWithBearer(t *testing.T) {
	repo := newFakeListingsRepo()
	seedService(t, repo, 1, "vet", "Happy Paws")

	uc := NewListServices(repo)

	services, err := uc.Execute(context.Background(), domain.Filter{}, true)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "+55 11 99999-0001", services[0].Phone)
	assert.Equal(t, "Rua das Flores, 120", services[0].Address)
	require.NotNil(t, services[0].Latitude)
	assert.InDelta(t, -23.55, *services[0].Latitude, 0.001)
}

func TestListServicesFilters(t *testing.T) {
	repo := newFakeListingsRepo()
	seedService(t, repo, 1, "vet", "Happy Paws")
	seedService(t, repo, 1, "walker", "Dog Trotters")
	seedService(t, repo, 1, "vet", "City Vet Center")

	uc := NewListServices(repo)

	services, err := uc.Execute(context.Background(), domain.Filter{Category: "vet", Search: "paws"}, true)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Happy Paws", services[0].Name)

	services, err = uc.Execute(context.Background(), domain.Filter{Category: "transport"}, true)
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

// -------------------------
// Update / delete
// -------------------------

func TestUpdateServiceOwnership(t *testing.T) {
	repo := newFakeListingsRepo()
	svc := seedService(t, repo, 1, "vet", "Happy Paws")

	uc := NewUpdateService(repo, testDispatcher())

	name := "Hijacked"
	_, err := uc.Execute(context.Background(), UpdateServiceInput{
		ServiceID: svc.ID, OwnerID: 2, Name: &name,
	})
	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Status)

	phone := "+55 11 98888-0002"
	updated, err := uc.Execute(context.Background(), UpdateServiceInput{
		ServiceID: svc.ID, OwnerID: 1, Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Happy Paws", updated.Name, "absent fields keep their value")
}

func TestUpdateServiceNotFound(t *testing.T) {
	uc := NewUpdateService(newFakeListingsRepo(), testDispatcher())

	name := "Ghost"
	_, err := uc.Execute(context.Background(), UpdateServiceInput{
		ServiceID: 9, OwnerID: 1, Name: &name,
	})
	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Status)
}

func TestDeleteServiceNotOwnerIsNotFound(t *testing.T) {
	repo := newFakeListingsRepo()
	svc := seedService(t, repo, 1, "vet", "Happy Paws")

	uc := NewDeleteService(repo, testDispatcher())

	err := uc.Execute(context.Background(), svc.ID, 2)
	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Contains(t, repo.services, svc.ID)

	require.NoError(t, uc.Execute(context.Background(), svc.ID, 1))
	assert.NotContains(t, repo.services, svc.ID)
}
