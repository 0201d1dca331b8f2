package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// ProductRequest asks the owner of a product (the initiator) to move stock to
// another shopkeeper (the requester). Only the requester may accept or reject
// it; only the initiator may cancel it while it is still pending.
type ProductRequest struct {
	ID          string
	ProductID   string
	InitiatorID string
	RequesterID string
	Quantity    int
	Status      RequestStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Resolved for display on reads; not persisted on the request row.
	ProductName       string
	InitiatorShopName string
	RequesterShopName string
}
