package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// dateLayout formato de fecha en los DTOs de servicio.
const dateLayout = "2006-01-02"

var validServiceTypes = map[string]bool{
	entity.ServiceTypeInternet:     true,
	entity.ServiceTypeConnectivity: true,
	entity.ServiceTypeHosting:      true,
	entity.ServiceTypeCloud:        true,
	entity.ServiceTypeSecurity:     true,
	entity.ServiceTypeMaintenance:  true,
}

// ServiceUseCase maneja el CRUD de servicios contratados.
// El borrado (incluye líneas de factura que lo referencian) vive en billing.CascadeUseCase.
type ServiceUseCase struct {
	repo         repository.ServiceRepository
	customerRepo repository.CustomerRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, customerRepo repository.CustomerRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra un servicio para un cliente de la empresa.
func (uc *ServiceUseCase) Create(ctx context.Context, companyID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	start, end, err := uc.validate(companyID, req.CustomerID, req.Type, req.Name, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	service := &entity.Service{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		Type:       req.Type,
		Name:       req.Name,
		NRC:        req.NRC,
		MRC:        req.MRC,
		StartDate:  start,
		EndDate:    end,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio. Verifica que pertenezca a la empresa.
func (uc *ServiceUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ServiceResponse, error) {
	service, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List lista los servicios de la empresa, fecha de inicio más reciente primero,
// con el nombre del cliente resuelto.
func (uc *ServiceUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.ServiceResponse, error) {
	page.DefaultPage()
	services, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, *toServiceResponse(s))
	}
	return items, nil
}

// Update actualiza los datos del servicio.
func (uc *ServiceUseCase) Update(ctx context.Context, companyID, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	start, end, err := uc.validate(companyID, req.CustomerID, req.Type, req.Name, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	service.CustomerID = req.CustomerID
	service.Type = req.Type
	service.Name = req.Name
	service.NRC = req.NRC
	service.MRC = req.MRC
	service.StartDate = start
	service.EndDate = end
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// validate chequea tipo, cliente y fechas. Retorna las fechas parseadas.
func (uc *ServiceUseCase) validate(companyID, customerID, serviceType, name, startDate, endDate string) (time.Time, *time.Time, error) {
	if strings.TrimSpace(name) == "" || customerID == "" {
		return time.Time{}, nil, domain.ErrInvalidInput
	}
	if !validServiceTypes[serviceType] {
		return time.Time{}, nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return time.Time{}, nil, err
	}
	if customer == nil {
		return time.Time{}, nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return time.Time{}, nil, domain.ErrForbidden
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, nil, domain.ErrInvalidInput
	}
	var end *time.Time
	if endDate != "" {
		e, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return time.Time{}, nil, domain.ErrInvalidInput
		}
		if e.Before(start) {
			return time.Time{}, nil, domain.ErrInvalidInput
		}
		end = &e
	}
	return start, end, nil
}

func (uc *ServiceUseCase) getOwned(companyID, id string) (*entity.Service, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if service.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return service, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	resp := &dto.ServiceResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Type:         s.Type,
		Name:         s.Name,
		NRC:          s.NRC,
		MRC:          s.MRC,
		StartDate:    s.StartDate.Format(dateLayout),
	}
	if s.EndDate != nil {
		resp.EndDate = s.EndDate.Format(dateLayout)
	}
	return resp
}
