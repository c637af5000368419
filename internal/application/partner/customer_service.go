package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// CustomerService handles customer business operations, including the
// contacts owned by each customer
type CustomerService struct {
	customers partner.CustomerRepository
	contacts  partner.CustomerContactRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customers partner.CustomerRepository,
	contacts partner.CustomerContactRepository,
) *CustomerService {
	return &CustomerService{customers: customers, contacts: contacts}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.customers.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Customer code %s is already in use", req.Code)
	}

	customer, err := partner.NewCustomer(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.GroupID != nil {
		customer.AssignGroup(*req.GroupID)
	}
	if req.CategoryID != nil {
		customer.AssignCategory(*req.CategoryID)
	}
	customer.UpdateContactInfo(req.Email, req.Phone, req.Address)

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer, nil)
	return &resp, nil
}

// GetByID retrieves a customer with its contacts
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.contacts.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer, contacts)
	return &resp, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CustomerResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	customers, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}
	total, err := s.customers.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for idx := range customers {
		responses = append(responses, ToCustomerResponse(&customers[idx], nil))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update updates a customer's attributes
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := customer.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.GroupID != nil {
		customer.AssignGroup(*req.GroupID)
	}
	if req.CategoryID != nil {
		customer.AssignCategory(*req.CategoryID)
	}
	if req.Email != nil || req.Phone != nil || req.Address != nil {
		email, phone, address := customer.Email, customer.Phone, customer.Address
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		customer.UpdateContactInfo(email, phone, address)
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, customerID)
}

// Activate marks the customer as active
func (s *CustomerService) Activate(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}
	customer.Activate()
	return s.customers.Save(ctx, customer)
}

// Deactivate marks the customer as inactive
func (s *CustomerService) Deactivate(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}
	customer.Deactivate()
	return s.customers.Save(ctx, customer)
}

// Delete removes a customer, cascade-deleting its contacts.
// Orders keep their customer reference; only owned children go.
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return err
	}
	if err := s.contacts.DeleteByCustomer(ctx, customerID); err != nil {
		return err
	}
	return s.customers.Delete(ctx, customerID)
}

// AddContact adds a contact to a customer
func (s *CustomerService) AddContact(ctx context.Context, customerID uuid.UUID, req CreateContactRequest) (*ContactResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	contact, err := partner.NewCustomerContact(customerID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := contact.Update(req.Name, req.Email, req.Phone, req.Position); err != nil {
		return nil, err
	}

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	return &ContactResponse{
		ID:       contact.ID,
		Name:     contact.Name,
		Email:    contact.Email,
		Phone:    contact.Phone,
		Position: contact.Position,
	}, nil
}

// UpdateContact changes a contact's attributes
func (s *CustomerService) UpdateContact(ctx context.Context, customerID, contactID uuid.UUID, req CreateContactRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	contact, err := s.contacts.FindByID(ctx, contactID)
	if err != nil {
		return err
	}
	if contact.CustomerID != customerID {
		return shared.ErrNotFound
	}

	if err := contact.Update(req.Name, req.Email, req.Phone, req.Position); err != nil {
		return err
	}
	return s.contacts.Save(ctx, contact)
}

// DeleteContact removes a contact from a customer
func (s *CustomerService) DeleteContact(ctx context.Context, customerID, contactID uuid.UUID) error {
	contact, err := s.contacts.FindByID(ctx, contactID)
	if err != nil {
		return err
	}
	if contact.CustomerID != customerID {
		return shared.ErrNotFound
	}
	return s.contacts.Delete(ctx, contactID)
}
