package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
)

// memCompanyRepo imita el constraint UNIQUE sobre companies.code.
type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	for _, existing := range r.companies {
		if existing.Code == c.Code {
			return domain.ErrDuplicate
		}
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *memCompanyRepo) GetByCode(code string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) List(int, int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	if _, ok := r.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) Delete(id string) error {
	if _, ok := r.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

func newCompanyUC() *CompanyUseCase {
	return NewCompanyUseCase(&memCompanyRepo{companies: map[string]*entity.Company{}})
}

func TestCompanyCreate_LuegoGetByID(t *testing.T) {
	uc := newCompanyUC()

	created, err := uc.Create(context.Background(), &dto.CreateCompanyRequest{
		Code:    "ACME",
		Name:    "ACME Telecom",
		Address: "Av. Principal 1",
		Phone:   "555-0100",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Code)
	assert.Equal(t, "ACME Telecom", got.Name)
	assert.Equal(t, "Av. Principal 1", got.Address)
}

func TestCompanyCreate_SinCodigo(t *testing.T) {
	uc := newCompanyUC()

	_, err := uc.Create(context.Background(), &dto.CreateCompanyRequest{Code: "  ", Name: "Sin Código SA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyCreate_CodigoDuplicado(t *testing.T) {
	uc := newCompanyUC()

	_, err := uc.Create(context.Background(), &dto.CreateCompanyRequest{Code: "ACME", Name: "ACME Telecom"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &dto.CreateCompanyRequest{Code: "ACME", Name: "Otra ACME"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyResolveCode(t *testing.T) {
	uc := newCompanyUC()

	created, err := uc.Create(context.Background(), &dto.CreateCompanyRequest{Code: "ACME", Name: "ACME Telecom"})
	require.NoError(t, err)

	id, err := uc.ResolveCode(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)
}

func TestCompanyResolveCode_Desconocido(t *testing.T) {
	uc := newCompanyUC()

	_, err := uc.ResolveCode(context.Background(), "NADIE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdate_NoEncontrada(t *testing.T) {
	uc := newCompanyUC()

	_, err := uc.Update(context.Background(), "no-existe", &dto.UpdateCompanyRequest{Code: "ACME", Name: "ACME Telecom"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyDelete_NoEncontrada(t *testing.T) {
	uc := newCompanyUC()

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
