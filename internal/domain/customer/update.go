package customer

import (
	"fmt"
	"strconv"
	"time"

	"customer-management/internal/pkg/apperrors"
	"customer-management/internal/pkg/optional"
)

// Update is a sparse change set. Absent fields leave the record untouched;
// explicit nulls clear optional fields and are rejected for required ones.
type Update struct {
	Shop                optional.Field[Shop]
	Source              optional.Field[Source]
	CustomerType        optional.Field[Type]
	Demand              optional.Field[int]
	DemandDescription   optional.Field[string]
	CustomerStatus      optional.Field[Status]
	ExpectedOrderDate   optional.Field[time.Time]
	ExpectedOrderAmount optional.Field[float64]
}

type lookupKind uint8

const (
	lookupByCustomerID lookupKind = iota
	lookupByID
)

// LookupKey selects a record either by business customer_id or by internal
// id. Build it with ByCustomerID or ByID; the zero value is ByCustomerID("").
type LookupKey struct {
	kind       lookupKind
	CustomerID string
	ID         int64
}

func ByCustomerID(customerID string) LookupKey {
	return LookupKey{kind: lookupByCustomerID, CustomerID: customerID}
}

func ByID(id int64) LookupKey {
	return LookupKey{kind: lookupByID, ID: id}
}

func (k LookupKey) IsByID() bool {
	return k.kind == lookupByID
}

func (k LookupKey) String() string {
	if k.IsByID() {
		return "id=" + strconv.FormatInt(k.ID, 10)
	}
	return "customer_id=" + k.CustomerID
}

// ApplyTo merges the present fields into c and returns the Go names of the
// fields it wrote, in declaration order.
func (u Update) ApplyTo(c *Customer) ([]string, error) {
	var changed []string

	if err := setRequired(u.Shop, &c.Shop, "shop", "Shop", &changed); err != nil {
		return nil, err
	}
	if err := setRequired(u.Source, &c.Source, "source", "Source", &changed); err != nil {
		return nil, err
	}
	if err := setRequired(u.CustomerType, &c.CustomerType, "customer_type", "CustomerType", &changed); err != nil {
		return nil, err
	}
	if err := setRequired(u.Demand, &c.Demand, "demand", "Demand", &changed); err != nil {
		return nil, err
	}
	setOptional(u.DemandDescription, &c.DemandDescription, "DemandDescription", &changed)
	if err := setRequired(u.CustomerStatus, &c.CustomerStatus, "customer_status", "CustomerStatus", &changed); err != nil {
		return nil, err
	}
	setOptional(u.ExpectedOrderDate, &c.ExpectedOrderDate, "ExpectedOrderDate", &changed)
	setOptional(u.ExpectedOrderAmount, &c.ExpectedOrderAmount, "ExpectedOrderAmount", &changed)

	return changed, nil
}

// Validate checks the present fields in isolation, before any record is loaded.
func (u Update) Validate() error {
	var scratch Customer
	changed, err := u.ApplyTo(&scratch)
	if err != nil {
		return err
	}
	return validateFields(&scratch, changed...)
}

// Merge applies u to c, revalidates the whole record and advances LastModifiedDate.
// c is left untouched when an error is returned.
func (u Update) Merge(c *Customer, now time.Time) error {
	merged := *c
	if _, err := u.ApplyTo(&merged); err != nil {
		return err
	}
	if err := Validate(&merged); err != nil {
		return err
	}
	merged.Touch(now)
	*c = merged
	return nil
}

func setRequired[T any](f optional.Field[T], dst *T, jsonName, goName string, changed *[]string) error {
	if !f.IsPresent() {
		return nil
	}
	v, ok := f.Get()
	if !ok {
		return apperrors.NewValidationError(jsonName, fmt.Sprintf("%s cannot be null", jsonName))
	}
	*dst = v
	*changed = append(*changed, goName)
	return nil
}

func setOptional[T any](f optional.Field[T], dst **T, goName string, changed *[]string) {
	if !f.IsPresent() {
		return
	}
	*dst = f.Ptr()
	*changed = append(*changed, goName)
}
