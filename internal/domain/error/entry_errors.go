package error

import "errors"

// Ledger entry domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found in the system.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryAmount is returned when the entry amount is not positive.
	ErrInvalidEntryAmount = errors.New("invalid entry amount")

	// ErrInvalidEntryType is returned when the entry type is not income or expense.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrInvalidEntryStatus is returned when the entry status is not pending or confirmed.
	ErrInvalidEntryStatus = errors.New("invalid entry status")

	// ErrEntryDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrEntryDescriptionTooLong = errors.New("entry description too long")

	// ErrEntryAlreadyConfirmed is returned when confirming an entry twice.
	ErrEntryAlreadyConfirmed = errors.New("entry already confirmed")
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: ENT-XXYYYY where XX is the error kind and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryAmount      EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryType        EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryStatus      EntryErrorCode = "ENT-010003"
	ErrCodeEntryDescriptionTooLong EntryErrorCode = "ENT-010004"
	ErrCodeMissingEntryFields      EntryErrorCode = "ENT-010005"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound         EntryErrorCode = "ENT-020001"
	ErrCodeEntryCategoryNotFound EntryErrorCode = "ENT-020002"
	ErrCodeEntryWalletNotFound   EntryErrorCode = "ENT-020003"

	// Invariant errors (03XXXX)
	ErrCodeEntryAlreadyConfirmed EntryErrorCode = "ENT-030001"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Kind returns the taxonomy kind encoded in the error code.
func (e *EntryError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
