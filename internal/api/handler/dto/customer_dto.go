package dto

import (
	"time"

	"customer-management/internal/domain/customer"
	"customer-management/internal/pkg/apperrors"
	"customer-management/internal/pkg/optional"
)

type CreateCustomerRequest struct {
	Shop                customer.Shop   `json:"shop" enums:"YI,LI,MO" example:"YI"`
	CustomerID          string          `json:"customer_id" minLength:"3" maxLength:"50" example:"CUST001"`
	Source              customer.Source `json:"source" enums:"NATURAL_FLOW,RECOMMENDED" example:"NATURAL_FLOW"`
	CustomerType        customer.Type   `json:"customer_type" enums:"NEW,OLD,OLD_CHANGED_ID" example:"NEW"`
	Demand              int             `json:"demand" minimum:"1" maximum:"9999" example:"100"`
	DemandDescription   *string         `json:"demand_description" maxLength:"500" extensions:"x-nullable"`
	CustomerStatus      customer.Status `json:"customer_status" enums:"CONSULTING,SAMPLE,PREPARING_ORDER,DEAD" example:"CONSULTING"`
	ExpectedOrderDate   *Date           `json:"expected_order_date" swaggertype:"string" format:"date-time" example:"2024-01-20" extensions:"x-nullable"`
	ExpectedOrderAmount *float64        `json:"expected_order_amount" minimum:"0" extensions:"x-nullable"`
}

func (r CreateCustomerRequest) ToDomain() *customer.Customer {
	return &customer.Customer{
		Shop:                r.Shop,
		CustomerID:          r.CustomerID,
		Source:              r.Source,
		CustomerType:        r.CustomerType,
		Demand:              r.Demand,
		DemandDescription:   r.DemandDescription,
		CustomerStatus:      r.CustomerStatus,
		ExpectedOrderDate:   r.ExpectedOrderDate.TimePtr(),
		ExpectedOrderAmount: r.ExpectedOrderAmount,
	}
}

// UpdateCustomerRequest is a sparse update. A key that is missing leaves the
// field unchanged; a key set to null clears an optional field. CustomerID is
// read-only: it is accepted so full records can be sent back, and must name
// the record being updated.
type UpdateCustomerRequest struct {
	CustomerID          optional.Field[string]          `json:"customer_id,omitzero" swaggertype:"string" example:"CUST001"`
	Shop                optional.Field[customer.Shop]   `json:"shop,omitzero" swaggertype:"string" enums:"YI,LI,MO"`
	Source              optional.Field[customer.Source] `json:"source,omitzero" swaggertype:"string" enums:"NATURAL_FLOW,RECOMMENDED"`
	CustomerType        optional.Field[customer.Type]   `json:"customer_type,omitzero" swaggertype:"string" enums:"NEW,OLD,OLD_CHANGED_ID"`
	Demand              optional.Field[int]             `json:"demand,omitzero" swaggertype:"integer" example:"200"`
	DemandDescription   optional.Field[string]          `json:"demand_description,omitzero" swaggertype:"string" extensions:"x-nullable"`
	CustomerStatus      optional.Field[customer.Status] `json:"customer_status,omitzero" swaggertype:"string" enums:"CONSULTING,SAMPLE,PREPARING_ORDER,DEAD" example:"SAMPLE"`
	ExpectedOrderDate   optional.Field[Date]            `json:"expected_order_date,omitzero" swaggertype:"string" format:"date-time" example:"2024-01-20" extensions:"x-nullable"`
	ExpectedOrderAmount optional.Field[float64]         `json:"expected_order_amount,omitzero" swaggertype:"number" extensions:"x-nullable"`
}

func (r UpdateCustomerRequest) ToDomain() customer.Update {
	return customer.Update{
		Shop:                r.Shop,
		Source:              r.Source,
		CustomerType:        r.CustomerType,
		Demand:              r.Demand,
		DemandDescription:   r.DemandDescription,
		CustomerStatus:      r.CustomerStatus,
		ExpectedOrderDate:   orderDate(r.ExpectedOrderDate),
		ExpectedOrderAmount: r.ExpectedOrderAmount,
	}
}

// CheckCustomerID rejects a body customer_id that names another record.
func (r UpdateCustomerRequest) CheckCustomerID(pathCustomerID string) error {
	if r.CustomerID.IsNull() {
		return apperrors.NewValidationError("customer_id", "is read-only and cannot be null")
	}
	if v, ok := r.CustomerID.Get(); ok && v != pathCustomerID {
		return apperrors.NewValidationError("customer_id", "is read-only and must match the customer being updated")
	}
	return nil
}

func orderDate(f optional.Field[Date]) optional.Field[time.Time] {
	switch {
	case f.IsNull():
		return optional.Null[time.Time]()
	case f.IsPresent():
		v, _ := f.Get()
		return optional.Of(v.Time())
	default:
		return optional.Field[time.Time]{}
	}
}

type CustomerResponse struct {
	ID                  int64      `json:"id" example:"1"`
	Shop                string     `json:"shop" example:"YI"`
	CustomerID          string     `json:"customer_id" example:"CUST001"`
	Source              string     `json:"source" example:"NATURAL_FLOW"`
	CustomerType        string     `json:"customer_type" example:"NEW"`
	Demand              int        `json:"demand" example:"100"`
	DemandDescription   *string    `json:"demand_description" extensions:"x-nullable"`
	CustomerStatus      string     `json:"customer_status" example:"CONSULTING"`
	ExpectedOrderDate   *time.Time `json:"expected_order_date" extensions:"x-nullable"`
	ExpectedOrderAmount *float64   `json:"expected_order_amount" extensions:"x-nullable"`
	CreationDate        time.Time  `json:"creation_date"`
	LastModifiedDate    time.Time  `json:"last_modified_date"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	if c == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:                  c.ID,
		Shop:                string(c.Shop),
		CustomerID:          c.CustomerID,
		Source:              string(c.Source),
		CustomerType:        string(c.CustomerType),
		Demand:              c.Demand,
		DemandDescription:   c.DemandDescription,
		CustomerStatus:      string(c.CustomerStatus),
		ExpectedOrderDate:   c.ExpectedOrderDate,
		ExpectedOrderAmount: c.ExpectedOrderAmount,
		CreationDate:        c.CreationDate,
		LastModifiedDate:    c.LastModifiedDate,
	}
}

func NewCustomerListResponse(cs []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}
