package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, code string) (*partner.Customer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerContactRepository struct {
	mock.Mock
}

func (m *MockCustomerContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.CustomerContact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.CustomerContact), args.Error(1)
}

func (m *MockCustomerContactRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.CustomerContact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.CustomerContact), args.Error(1)
}

func (m *MockCustomerContactRepository) Save(ctx context.Context, contact *partner.CustomerContact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockCustomerContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerContactRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerContactRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]partner.CustomerContact, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.CustomerContact), args.Error(1)
}

func (m *MockCustomerContactRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerContactRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	return m.Called(ctx, customerID).Error(0)
}

func newCustomerService() (*CustomerService, *MockCustomerRepository, *MockCustomerContactRepository) {
	customers := new(MockCustomerRepository)
	contacts := new(MockCustomerContactRepository)
	return NewCustomerService(customers, contacts), customers, contacts
}

func TestCustomerService_Create(t *testing.T) {
	svc, customers, _ := newCustomerService()

	customers.On("FindByCode", mock.Anything, "CUST-001").Return(nil, shared.ErrNotFound)
	customers.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), CreateCustomerRequest{
		Code: "CUST-001",
		Name: "Acme Ltd",
	})

	require.NoError(t, err)
	assert.Equal(t, "CUST-001", resp.Code)
	assert.Equal(t, "Acme Ltd", resp.Name)
}

func TestCustomerService_Create_DuplicateCode(t *testing.T) {
	svc, customers, _ := newCustomerService()

	existing, err := partner.NewCustomer("CUST-001", "Acme Ltd")
	require.NoError(t, err)
	customers.On("FindByCode", mock.Anything, "CUST-001").Return(existing, nil)

	_, err = svc.Create(context.Background(), CreateCustomerRequest{
		Code: "CUST-001",
		Name: "Another Acme",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_MissingName(t *testing.T) {
	svc, customers, _ := newCustomerService()

	_, err := svc.Create(context.Background(), CreateCustomerRequest{Code: "CUST-001"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	customers.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}

func TestCustomerService_Delete_CascadesContacts(t *testing.T) {
	svc, customers, contacts := newCustomerService()

	customer, err := partner.NewCustomer("CUST-001", "Acme Ltd")
	require.NoError(t, err)

	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	contacts.On("DeleteByCustomer", mock.Anything, customer.ID).Return(nil)
	customers.On("Delete", mock.Anything, customer.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), customer.ID))

	contacts.AssertCalled(t, "DeleteByCustomer", mock.Anything, customer.ID)
	customers.AssertCalled(t, "Delete", mock.Anything, customer.ID)
}

func TestCustomerService_UpdateContact_RejectsForeignContact(t *testing.T) {
	svc, _, contacts := newCustomerService()

	contact, err := partner.NewCustomerContact(uuid.New(), "Jo Doe")
	require.NoError(t, err)
	contacts.On("FindByID", mock.Anything, contact.ID).Return(contact, nil)

	err = svc.UpdateContact(context.Background(), uuid.New(), contact.ID, CreateContactRequest{Name: "Jo Doe"})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	contacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
