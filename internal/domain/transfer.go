package domain

import "time"

// TransferRecord is the immutable audit entry written once per accepted
// request, inside the same transaction as the stock movement.
type TransferRecord struct {
	ID                    string
	ProductID             string
	InitiatorShopkeeperID string
	ReceiverShopkeeperID  string
	QuantityTransferred   int
	RequestID             string
	Notes                 string
	CreatedAt             time.Time

	ProductName       string
	InitiatorShopName string
	ReceiverShopName  string
}
