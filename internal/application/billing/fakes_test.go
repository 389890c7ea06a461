package billing

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// Fakes en memoria con la misma semántica que los adaptadores de postgres:
// nil en lecturas sin resultado, ErrNotFound en update/delete sin filas,
// ErrDuplicate / DuplicatePOError en violaciones de unicidad.

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	// lookupErr fuerza la falla de GetByID.
	lookupErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*entity.Service{}}
}

func (r *fakeServiceRepo) Create(s *entity.Service) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.CompanyID == companyID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *fakeServiceRepo) Update(s *entity.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) DeleteByCustomer(customerID string) error {
	for id, s := range r.services {
		if s.CustomerID == customerID {
			delete(r.services, id)
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	lines    map[string]*entity.InvoiceService

	// join de líneas contra servicios, como el LEFT JOIN del adaptador real
	serviceRepo *fakeServiceRepo
}

func newFakeInvoiceRepo(serviceRepo *fakeServiceRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:    map[string]*entity.Invoice{},
		lines:       map[string]*entity.InvoiceService{},
		serviceRepo: serviceRepo,
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range r.invoices {
		if existing.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) CreateLine(line *entity.InvoiceService) error {
	for _, existing := range r.lines {
		if existing.CustomerPO == line.CustomerPO {
			return &domain.DuplicatePOError{PO: line.CustomerPO}
		}
	}
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	cp := *line
	r.lines[line.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.Number == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) FindPOOwner(customerPO, excludeInvoiceID string) (string, error) {
	for _, line := range r.lines {
		if line.CustomerPO == customerPO && line.InvoiceID != excludeInvoiceID {
			return line.InvoiceID, nil
		}
	}
	return "", nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	var all []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompanyID == companyID {
			cp := *inv
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeInvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceServiceDetail, error) {
	var out []*entity.InvoiceServiceDetail
	for _, line := range r.lines {
		if line.InvoiceID != invoiceID {
			continue
		}
		d := &entity.InvoiceServiceDetail{InvoiceService: *line}
		if r.serviceRepo != nil {
			if s, ok := r.serviceRepo.services[line.ServiceID]; ok {
				d.ServiceName = s.Name
				d.ServiceType = s.Type
				d.MRC = s.MRC
			}
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.invoices {
		if existing.Number == inv.Number && existing.ID != inv.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteLines(invoiceID string) error {
	for id, line := range r.lines {
		if line.InvoiceID == invoiceID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	if _, ok := r.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) DeleteLinesByCustomer(customerID string) error {
	for id, line := range r.lines {
		inv, ok := r.invoices[line.InvoiceID]
		if ok && inv.CustomerID == customerID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) DeleteByCustomer(customerID string) error {
	for id, inv := range r.invoices {
		if inv.CustomerID == customerID {
			delete(r.invoices, id)
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) DeleteLinesByService(serviceID string) error {
	for id, line := range r.lines {
		if line.ServiceID == serviceID {
			delete(r.lines, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta fn sobre los mismos fakes y, como una transacción real,
// restaura el estado previo si fn falla.
type fakeTxRunner struct {
	invoiceRepo  *fakeInvoiceRepo
	serviceRepo  *fakeServiceRepo
	customerRepo *fakeCustomerRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	serviceRepo repository.ServiceRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	invSnap := snapshotMap(tx.invoiceRepo.invoices)
	lineSnap := snapshotMap(tx.invoiceRepo.lines)
	svcSnap := snapshotMap(tx.serviceRepo.services)
	custSnap := snapshotMap(tx.customerRepo.customers)

	if err := fn(tx.invoiceRepo, tx.serviceRepo, tx.customerRepo); err != nil {
		tx.invoiceRepo.invoices = invSnap
		tx.invoiceRepo.lines = lineSnap
		tx.serviceRepo.services = svcSnap
		tx.customerRepo.customers = custSnap
		return err
	}
	return nil
}

func snapshotMap[V any](m map[string]*V) map[string]*V {
	out := make(map[string]*V, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

// billingFixture agrupa fakes y casos de uso listos para los tests.
type billingFixture struct {
	customerRepo *fakeCustomerRepo
	serviceRepo  *fakeServiceRepo
	invoiceRepo  *fakeInvoiceRepo
	txRunner     *fakeTxRunner
}

func newBillingFixture() *billingFixture {
	customerRepo := newFakeCustomerRepo()
	serviceRepo := newFakeServiceRepo()
	invoiceRepo := newFakeInvoiceRepo(serviceRepo)
	return &billingFixture{
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		invoiceRepo:  invoiceRepo,
		txRunner: &fakeTxRunner{
			invoiceRepo:  invoiceRepo,
			serviceRepo:  serviceRepo,
			customerRepo: customerRepo,
		},
	}
}
