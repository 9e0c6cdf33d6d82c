package customer

import "time"

type Shop string

const (
	ShopYI Shop = "YI"
	ShopLI Shop = "LI"
	ShopMO Shop = "MO"
)

func (s Shop) IsValid() bool {
	switch s {
	case ShopYI, ShopLI, ShopMO:
		return true
	}
	return false
}

type Source string

const (
	SourceNaturalFlow Source = "NATURAL_FLOW"
	SourceRecommended Source = "RECOMMENDED"
)

func (s Source) IsValid() bool {
	return s == SourceNaturalFlow || s == SourceRecommended
}

type Type string

const (
	TypeNew          Type = "NEW"
	TypeOld          Type = "OLD"
	TypeOldChangedID Type = "OLD_CHANGED_ID"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeNew, TypeOld, TypeOldChangedID:
		return true
	}
	return false
}

type Status string

const (
	StatusConsulting     Status = "CONSULTING"
	StatusSample         Status = "SAMPLE"
	StatusPreparingOrder Status = "PREPARING_ORDER"
	StatusDead           Status = "DEAD"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConsulting, StatusSample, StatusPreparingOrder, StatusDead:
		return true
	}
	return false
}

// Customer is one row of customer_management. Validation tags are enforced by Validate.
type Customer struct {
	ID                  int64      `json:"id"`
	Shop                Shop       `json:"shop" validate:"required,enum"`
	CustomerID          string     `json:"customer_id" validate:"required,min=3,max=50,customerid"`
	Source              Source     `json:"source" validate:"required,enum"`
	CustomerType        Type       `json:"customer_type" validate:"required,enum"`
	Demand              int        `json:"demand" validate:"gt=0,lt=10000"`
	DemandDescription   *string    `json:"demand_description" validate:"omitempty,max=500"`
	CustomerStatus      Status     `json:"customer_status" validate:"required,enum"`
	ExpectedOrderDate   *time.Time `json:"expected_order_date"`
	ExpectedOrderAmount *float64   `json:"expected_order_amount" validate:"omitempty,gte=0,lt=1000000"`
	CreationDate        time.Time  `json:"creation_date"`
	LastModifiedDate    time.Time  `json:"last_modified_date"`
}

// Stamp sets both timestamps of a record that is about to be inserted.
func (c *Customer) Stamp(now time.Time) {
	ts := now.UTC().Truncate(time.Microsecond)
	c.CreationDate = ts
	c.LastModifiedDate = ts
}

// Touch advances LastModifiedDate to now, or one microsecond past its current
// value when the clock has not moved far enough for the store to see a change.
func (c *Customer) Touch(now time.Time) {
	ts := now.UTC().Truncate(time.Microsecond)
	if !ts.After(c.LastModifiedDate) {
		ts = c.LastModifiedDate.Add(time.Microsecond)
	}
	c.LastModifiedDate = ts
}
