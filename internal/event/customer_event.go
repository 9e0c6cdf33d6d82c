package event

import (
	"time"

	"github.com/google/uuid"
)

type CustomerEventPayload struct {
	ID                  int64      `json:"id"`
	CustomerID          string     `json:"customer_id"`
	Shop                string     `json:"shop"`
	Source              string     `json:"source"`
	CustomerType        string     `json:"customer_type"`
	Demand              int        `json:"demand"`
	DemandDescription   *string    `json:"demand_description"`
	CustomerStatus      string     `json:"customer_status"`
	ExpectedOrderDate   *time.Time `json:"expected_order_date"`
	ExpectedOrderAmount *float64   `json:"expected_order_amount"`
	CreationDate        time.Time  `json:"creation_date"`
	LastModifiedDate    time.Time  `json:"last_modified_date"`
}

type CustomerCreatedEvent struct {
	EventID   string               `json:"event_id"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	EventID   string               `json:"event_id"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	CustomerID string    `json:"customer_id"`
}

func NewCustomerCreatedEvent(payload CustomerEventPayload) CustomerCreatedEvent {
	return CustomerCreatedEvent{EventID: uuid.NewString(), Timestamp: time.Now().UTC(), Payload: payload}
}

func NewCustomerUpdatedEvent(payload CustomerEventPayload) CustomerUpdatedEvent {
	return CustomerUpdatedEvent{EventID: uuid.NewString(), Timestamp: time.Now().UTC(), Payload: payload}
}

func NewCustomerDeletedEvent(customerID string) CustomerDeletedEvent {
	return CustomerDeletedEvent{EventID: uuid.NewString(), Timestamp: time.Now().UTC(), CustomerID: customerID}
}
