package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
)

const (
	testCompanyID      = "00000000-0000-0000-0000-0000000000c1"
	testOtherCompanyID = "00000000-0000-0000-0000-0000000000c2"
)

// Fakes mínimos en memoria para el CRUD de servicios.

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *memCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

type memServiceRepo struct {
	services map[string]*entity.Service
}

func (r *memServiceRepo) Create(s *entity.Service) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) GetByID(id string) (*entity.Service, error) {
	return r.services[id], nil
}

func (r *memServiceRepo) ListByCompany(companyID string, _, _ int) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memServiceRepo) Update(s *entity.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) Delete(id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *memServiceRepo) DeleteByCustomer(customerID string) error {
	for id, s := range r.services {
		if s.CustomerID == customerID {
			delete(r.services, id)
		}
	}
	return nil
}

func newServiceFixture(t *testing.T) (*ServiceUseCase, string) {
	t.Helper()
	customerRepo := &memCustomerRepo{customers: map[string]*entity.Customer{}}
	serviceRepo := &memServiceRepo{services: map[string]*entity.Service{}}
	c := &entity.Customer{CompanyID: testCompanyID, Name: "ACME Corp", CreatedAt: time.Now()}
	require.NoError(t, customerRepo.Create(c))
	return NewServiceUseCase(serviceRepo, customerRepo), c.ID
}

func validServiceRequest(customerID string) *dto.CreateServiceRequest {
	return &dto.CreateServiceRequest{
		CustomerID: customerID,
		Type:       entity.ServiceTypeInternet,
		Name:       "Fibra 100M",
		NRC:        decimal.RequireFromString("200.00"),
		MRC:        decimal.RequireFromString("150.00"),
		StartDate:  "2026-01-01",
	}
}

func TestServiceCreate_Valido(t *testing.T) {
	uc, custID := newServiceFixture(t)

	resp, err := uc.Create(context.Background(), testCompanyID, validServiceRequest(custID))
	require.NoError(t, err)
	assert.Equal(t, "Fibra 100M", resp.Name)
	assert.Equal(t, "2026-01-01", resp.StartDate)
	assert.Empty(t, resp.EndDate, "sin end_date el servicio queda vigente")
	assert.True(t, resp.MRC.Equal(decimal.RequireFromString("150.00")))
}

func TestServiceCreate_TipoInvalido(t *testing.T) {
	uc, custID := newServiceFixture(t)

	req := validServiceRequest(custID)
	req.Type = "telepatia"
	_, err := uc.Create(context.Background(), testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceCreate_FechasInvalidas(t *testing.T) {
	uc, custID := newServiceFixture(t)

	req := validServiceRequest(custID)
	req.StartDate = "01/01/2026"
	_, err := uc.Create(context.Background(), testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha")

	req = validServiceRequest(custID)
	req.EndDate = "2025-12-31" // anterior al start
	_, err = uc.Create(context.Background(), testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "end antes de start")
}

func TestServiceCreate_ConFechaDeCorte(t *testing.T) {
	uc, custID := newServiceFixture(t)

	req := validServiceRequest(custID)
	req.EndDate = "2026-12-31"
	resp, err := uc.Create(context.Background(), testCompanyID, req)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", resp.EndDate)
}

func TestServiceCreate_ClienteDeOtraEmpresa(t *testing.T) {
	uc, custID := newServiceFixture(t)

	_, err := uc.Create(context.Background(), testOtherCompanyID, validServiceRequest(custID))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestServiceUpdate_CambiaDatos(t *testing.T) {
	uc, custID := newServiceFixture(t)

	created, err := uc.Create(context.Background(), testCompanyID, validServiceRequest(custID))
	require.NoError(t, err)

	upd := &dto.UpdateServiceRequest{
		CustomerID: custID,
		Type:       entity.ServiceTypeHosting,
		Name:       "Hosting dedicado",
		NRC:        decimal.Zero,
		MRC:        decimal.RequireFromString("99.00"),
		StartDate:  "2026-02-01",
	}
	resp, err := uc.Update(context.Background(), testCompanyID, created.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceTypeHosting, resp.Type)
	assert.Equal(t, "Hosting dedicado", resp.Name)
	assert.Equal(t, "2026-02-01", resp.StartDate)
}

func TestServiceGetByID_NoEncontrado(t *testing.T) {
	uc, _ := newServiceFixture(t)

	_, err := uc.GetByID(context.Background(), testCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
