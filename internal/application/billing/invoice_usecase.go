package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// InvoiceUseCase crea, actualiza y consulta facturas con sus líneas.
// Las mutaciones corren en una sola transacción; los pre-checks de duplicados
// (número de factura, PO de línea) dan mensajes amigables y los constraints
// UNIQUE del storage cierran la carrera entre escritores concurrentes.
type InvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso. Los repos van atados al pool;
// txRunner provee los atados a transacción.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

// Create crea la factura y sus líneas.
//
// Secuencia: validar número y cliente; pre-check de número duplicado (fuera de
// la tx); luego tx{insertar cabecera, insertar cada línea}. Cualquier fallo en
// la tx hace rollback completo.
func (uc *InvoiceUseCase) Create(ctx context.Context, companyID string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Number == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	// Pre-check: número de factura ya usado (coincidencia exacta, case-sensitive).
	existing, err := uc.invoiceRepo.GetByNumber(in.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		Number:     in.Number,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.ServiceRepository,
		_ repository.CustomerRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range in.Services {
			line := &entity.InvoiceService{
				ID:         uuid.New().String(),
				InvoiceID:  inv.ID,
				ServiceID:  item.ServiceID,
				Qty:        item.Qty,
				CustomerPO: item.CustomerPO,
				CreatedAt:  now,
			}
			if err := invoiceRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.buildResponse(inv, customer.Name)
}

// Update actualiza cabecera y reemplaza el set completo de líneas (sin diff).
//
// Pre-checks fuera de la tx: otra factura con el mismo número; cada PO contra
// líneas de otras facturas (el error nombra el PO ofensor — un PO duplicado en
// una línea tardía aborta antes de cualquier escritura). Luego
// tx{update cabecera, borrar líneas, insertar líneas nuevas}.
func (uc *InvoiceUseCase) Update(ctx context.Context, companyID, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Number == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if current.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	// Pre-check 1: otra factura (id distinto) con el mismo número.
	other, err := uc.invoiceRepo.GetByNumber(in.Number)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}

	// Pre-check 2: cada PO contra líneas de otras facturas.
	for _, item := range in.Services {
		owner, err := uc.invoiceRepo.FindPOOwner(item.CustomerPO, id)
		if err != nil {
			return nil, err
		}
		if owner != "" {
			return nil, &domain.DuplicatePOError{PO: item.CustomerPO}
		}
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:         id,
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		Number:     in.Number,
		Status:     in.Status,
		CreatedAt:  current.CreatedAt,
		UpdatedAt:  now,
	}
	if inv.Status == "" {
		inv.Status = current.Status
	}

	err = uc.txRunner.Run(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.ServiceRepository,
		_ repository.CustomerRepository,
	) error {
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		// Reemplazo completo: borrar todas las líneas y reinsertar las enviadas.
		if err := invoiceRepo.DeleteLines(id); err != nil {
			return err
		}
		for _, item := range in.Services {
			line := &entity.InvoiceService{
				ID:         uuid.New().String(),
				InvoiceID:  id,
				ServiceID:  item.ServiceID,
				Qty:        item.Qty,
				CustomerPO: item.CustomerPO,
				CreatedAt:  now,
			}
			if err := invoiceRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.buildResponse(inv, customer.Name)
}

// GetByID obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetByID(companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	customerName := ""
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		// La factura se entrega igual, solo sin el nombre del cliente.
		log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("no se pudo resolver el cliente de la factura")
	} else if customer != nil {
		customerName = customer.Name
	}
	return uc.toResponseWithLines(inv, customerName)
}

// List lista cabeceras de factura de la empresa.
func (uc *InvoiceUseCase) List(companyID string, limit, offset int) ([]dto.InvoiceListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceListItem, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.InvoiceListItem{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Number:     inv.Number,
			Status:     inv.Status,
			CreatedAt:  inv.CreatedAt,
		})
	}
	return out, nil
}

// Delete elimina la factura y sus líneas en una transacción.
func (uc *InvoiceUseCase) Delete(ctx context.Context, companyID, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.ServiceRepository,
		_ repository.CustomerRepository,
	) error {
		if err := invoiceRepo.DeleteLines(id); err != nil {
			return err
		}
		return invoiceRepo.Delete(id)
	})
}

// buildResponse relee las líneas (post-commit) y arma la respuesta.
func (uc *InvoiceUseCase) buildResponse(inv *entity.Invoice, customerName string) (*dto.InvoiceResponse, error) {
	return uc.toResponseWithLines(inv, customerName)
}

func (uc *InvoiceUseCase) toResponseWithLines(inv *entity.Invoice, customerName string) (*dto.InvoiceResponse, error) {
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CompanyID:    inv.CompanyID,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		Number:       inv.Number,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
		Services:     make([]dto.InvoiceLineResponse, 0, len(lines)),
	}
	total := decimal.Zero
	for _, d := range lines {
		lineTotal := d.LineTotal()
		total = total.Add(lineTotal)
		resp.Services = append(resp.Services, dto.InvoiceLineResponse{
			ID:          d.ID,
			ServiceID:   d.ServiceID,
			ServiceName: d.ServiceName,
			ServiceType: d.ServiceType,
			Qty:         d.Qty,
			CustomerPO:  d.CustomerPO,
			MRC:         d.MRC,
			LineTotal:   lineTotal,
		})
	}
	resp.Total = total
	return resp, nil
}
