package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidOrderRequest     = errors.New("order must have between 1 and 50 items")
	ErrInvalidDiscountCode     = errors.New("discount code is unknown, inactive or expired")
	ErrInvalidStateTransition  = errors.New("state transition is not allowed from the current status")
	ErrOrderNotPayable         = errors.New("order is not in a payable status")
	ErrAlreadyPaid             = errors.New("order already has a successful payment")
	ErrDuplicatePendingPayment = errors.New("a pending payment was recently created for this order")
	ErrPaymentInitiationFailed = errors.New("payment initiation failed at the provider")
	ErrNotOwner                = errors.New("actor does not own this order")
	ErrReturnWindowClosed      = errors.New("return window for this order has closed")
	ErrDuplicateActiveReturn   = errors.New("an active return already exists for this order")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrRefundExceedsOrderTotal = errors.New("refund would exceed the order total")
	ErrRejectionReasonRequired = errors.New("rejection requires a non-blank reason")
	ErrCurrencyMismatch        = errors.New("currency mismatch between amounts")
)
