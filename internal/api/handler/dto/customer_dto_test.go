package dto

import (
	"encoding/json"
	"testing"
	"time"

	"customer-management/internal/domain/customer"
	"customer-management/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerRequest_ToDomain(t *testing.T) {
	body := `{
		"shop": "YI",
		"customer_id": "CUST001",
		"source": "NATURAL_FLOW",
		"customer_type": "NEW",
		"demand": 100,
		"demand_description": null,
		"customer_status": "CONSULTING",
		"expected_order_date": "2024-07-01T00:00:00Z",
		"expected_order_amount": 1500.25
	}`

	var req CreateCustomerRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	c := req.ToDomain()

	assert.Equal(t, customer.ShopYI, c.Shop)
	assert.Equal(t, "CUST001", c.CustomerID)
	assert.Equal(t, customer.SourceNaturalFlow, c.Source)
	assert.Equal(t, 100, c.Demand)
	assert.Nil(t, c.DemandDescription)
	require.NotNil(t, c.ExpectedOrderDate)
	assert.True(t, c.ExpectedOrderDate.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1500.25, *c.ExpectedOrderAmount)
	assert.Zero(t, c.ID)
}

func TestCreateCustomerRequest_DateOnlyOrderDate(t *testing.T) {
	var req CreateCustomerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expected_order_date": "2024-01-20"}`), &req))
	c := req.ToDomain()

	require.NotNil(t, c.ExpectedOrderDate)
	assert.True(t, c.ExpectedOrderDate.Equal(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))

	var empty CreateCustomerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expected_order_date": null}`), &empty))
	assert.Nil(t, empty.ToDomain().ExpectedOrderDate)
}

func TestUpdateCustomerRequest_ToDomain(t *testing.T) {
	t.Run("absent, null and set keys", func(t *testing.T) {
		var req UpdateCustomerRequest
		require.NoError(t, json.Unmarshal([]byte(`{"demand": 200, "demand_description": null}`), &req))
		upd := req.ToDomain()

		v, ok := upd.Demand.Get()
		assert.True(t, ok)
		assert.Equal(t, 200, v)
		assert.True(t, upd.DemandDescription.IsNull())
		assert.False(t, upd.Shop.IsPresent())
		assert.False(t, upd.ExpectedOrderAmount.IsPresent())
	})

	t.Run("enum values decode into domain types", func(t *testing.T) {
		var req UpdateCustomerRequest
		require.NoError(t, json.Unmarshal([]byte(`{"customer_status": "SAMPLE", "shop": "MO"}`), &req))
		upd := req.ToDomain()

		status, _ := upd.CustomerStatus.Get()
		shop, _ := upd.Shop.Get()
		assert.Equal(t, customer.StatusSample, status)
		assert.Equal(t, customer.ShopMO, shop)
	})

	t.Run("order date keeps absent, null and set apart", func(t *testing.T) {
		var set, cleared, absent UpdateCustomerRequest
		require.NoError(t, json.Unmarshal([]byte(`{"expected_order_date": "2024-01-20"}`), &set))
		require.NoError(t, json.Unmarshal([]byte(`{"expected_order_date": null}`), &cleared))
		require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))

		v, ok := set.ToDomain().ExpectedOrderDate.Get()
		assert.True(t, ok)
		assert.True(t, v.Equal(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))
		assert.True(t, cleared.ToDomain().ExpectedOrderDate.IsNull())
		assert.False(t, absent.ToDomain().ExpectedOrderDate.IsPresent())
	})

	t.Run("bad order date names the key", func(t *testing.T) {
		var req UpdateCustomerRequest
		err := json.Unmarshal([]byte(`{"expected_order_date": "soon"}`), &req)
		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "expected_order_date", typeErr.Field)
	})

	t.Run("wrong JSON type is a decode error", func(t *testing.T) {
		var req UpdateCustomerRequest
		assert.Error(t, json.Unmarshal([]byte(`{"demand": "lots"}`), &req))
	})
}

func TestUpdateCustomerRequest_CheckCustomerID(t *testing.T) {
	decode := func(body string) UpdateCustomerRequest {
		var req UpdateCustomerRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	assert.NoError(t, decode(`{}`).CheckCustomerID("CUST001"))
	assert.NoError(t, decode(`{"customer_id": "CUST001"}`).CheckCustomerID("CUST001"))

	for _, body := range []string{`{"customer_id": "OTHER"}`, `{"customer_id": null}`} {
		err := decode(body).CheckCustomerID("CUST001")
		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr, body)
		assert.Equal(t, "customer_id", vErr.Field)
	}
}

func TestNewCustomerResponse(t *testing.T) {
	desc := "needs samples"
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := &customer.Customer{
		ID:                7,
		Shop:              customer.ShopLI,
		CustomerID:        "CUST007",
		Source:            customer.SourceRecommended,
		CustomerType:      customer.TypeOld,
		Demand:            3,
		DemandDescription: &desc,
		CustomerStatus:    customer.StatusDead,
		CreationDate:      now,
		LastModifiedDate:  now,
	}

	raw, err := json.Marshal(NewCustomerResponse(c))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "CUST007", decoded["customer_id"])
	assert.Equal(t, "LI", decoded["shop"])
	assert.Equal(t, "needs samples", decoded["demand_description"])
	assert.Equal(t, "2024-06-01T12:00:00Z", decoded["creation_date"])
	assert.Contains(t, decoded, "expected_order_date")
	assert.Nil(t, decoded["expected_order_date"], "unset optional fields are serialised as null")

	assert.Equal(t, CustomerResponse{}, NewCustomerResponse(nil))
}

func TestNewCustomerListResponse(t *testing.T) {
	assert.Equal(t, []CustomerResponse{}, NewCustomerListResponse(nil))

	list := NewCustomerListResponse([]*customer.Customer{{CustomerID: "A01"}, {CustomerID: "B02"}})
	require.Len(t, list, 2)
	assert.Equal(t, "B02", list[1].CustomerID)
}
