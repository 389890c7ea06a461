package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
)

func newCustomerUC() *CustomerUseCase {
	return NewCustomerUseCase(&memCustomerRepo{customers: map[string]*entity.Customer{}})
}

func TestCustomerCreate_LuegoGetByID(t *testing.T) {
	uc := newCustomerUC()

	created, err := uc.Create(context.Background(), testCompanyID, &dto.CreateCustomerRequest{
		Name:    "Hotel Miramar",
		Address: "Calle 5 #12",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, testCompanyID, created.CompanyID)

	got, err := uc.GetByID(context.Background(), testCompanyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Miramar", got.Name)
	assert.Equal(t, "Calle 5 #12", got.Address)
}

func TestCustomerCreate_SinNombre(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.Create(context.Background(), testCompanyID, &dto.CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerGetByID_OtraEmpresa(t *testing.T) {
	uc := newCustomerUC()

	created, err := uc.Create(context.Background(), testCompanyID, &dto.CreateCustomerRequest{Name: "Hotel Miramar"})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), testOtherCompanyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustomerUpdate_CambiaDatos(t *testing.T) {
	uc := newCustomerUC()

	created, err := uc.Create(context.Background(), testCompanyID, &dto.CreateCustomerRequest{Name: "Hotel Miramar"})
	require.NoError(t, err)
	before := created.UpdatedAt

	time.Sleep(time.Millisecond)
	resp, err := uc.Update(context.Background(), testCompanyID, created.ID, &dto.UpdateCustomerRequest{
		Name:    "Hotel Miramar y Spa",
		Address: "Calle 5 #14",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hotel Miramar y Spa", resp.Name)
	assert.True(t, resp.UpdatedAt.After(before))
}

func TestCustomerUpdate_NoEncontrado(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.Update(context.Background(), testCompanyID, "no-existe", &dto.UpdateCustomerRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
