package domain

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrShopkeeperNotFound   = errors.New("shopkeeper not found")
	ErrRequestNotFound      = errors.New("product request not found")
	ErrTransferNotFound     = errors.New("transfer record not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrSelfRequest       = errors.New("cannot make a request to yourself")
	ErrExceedsStock      = errors.New("requested quantity exceeds available stock")
	ErrInsufficientStock = errors.New("insufficient stock to fulfill the request")

	ErrForbidden         = errors.New("not authorized to perform this action")
	ErrRequestNotPending = errors.New("request is no longer pending")
	ErrInvalidStatus     = errors.New("only ACCEPTED or REJECTED are allowed")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidID = errors.New("invalid id")
)
