package domain

import (
	"errors"
	"fmt"
)

// LNURL error kinds. Callers match them with errors.Is.
var (
	ErrInvalidAddress        = errors.New("invalid lnurl or lightning address")
	ErrClientCreationFailed  = errors.New("failed to create lnurl client")
	ErrRequestFailed         = errors.New("lnurl request failed")
	ErrInvalidResponse       = errors.New("invalid lnurl response")
	ErrInvalidAmount         = errors.New("amount outside sendable range")
	ErrInvoiceCreationFailed = errors.New("invoice creation failed")
	ErrAuthenticationFailed  = errors.New("lnurl-auth failed")
)

// InvalidAmountError reports an amount outside the range a service accepts.
// All values are in satoshis.
type InvalidAmountError struct {
	AmountSatoshis uint64
	Min            uint64
	Max            uint64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %d sats: must be between %d and %d sats",
		e.AmountSatoshis, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrInvalidAmount) hold.
func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

// InvoiceCreationError wraps a failure while requesting an invoice.
type InvoiceCreationError struct {
	Details string
}

func (e *InvoiceCreationError) Error() string {
	return "invoice creation failed: " + e.Details
}

// Is makes errors.Is(err, ErrInvoiceCreationFailed) hold.
func (e *InvoiceCreationError) Is(target error) bool { return target == ErrInvoiceCreationFailed }

// ServiceError is an explicit {"status":"ERROR"} reply from a service.
type ServiceError struct {
	Reason string
}

func (e *ServiceError) Error() string {
	if e.Reason == "" {
		return "lnurl service returned an error"
	}
	return "lnurl service error: " + e.Reason
}
