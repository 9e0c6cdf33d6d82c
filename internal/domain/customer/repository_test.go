package customer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) Create(ctx context.Context, c *Customer) error {
	ret := _m.Called(ctx, c)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerRepository) FindByCustomerID(ctx context.Context, customerID string) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *Customer); ok {
		r0 = rf(ctx, customerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindAll(ctx context.Context, skip, limit int) ([]*Customer, error) {
	ret := _m.Called(ctx, skip, limit)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}

	return r0, ret.Error(1)
}

// Update hands the stored record to mutate the way a real transaction would.
// The first return value is the record found under key, or nil for a miss.
func (_m *MockCustomerRepository) Update(ctx context.Context, key LookupKey, mutate MutateFunc) (*Customer, error) {
	ret := _m.Called(ctx, key, mutate)

	if err := ret.Error(1); err != nil {
		return nil, err
	}
	stored, _ := ret.Get(0).(*Customer)
	if stored == nil {
		return nil, ErrNotFound
	}

	working := *stored
	if err := mutate(&working); err != nil {
		return nil, err
	}
	return &working, nil
}

func (_m *MockCustomerRepository) Delete(ctx context.Context, customerID string) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}

var _ CustomerRepository = (*MockCustomerRepository)(nil)
