package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is not found in the system.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletNameRequired is returned when the wallet name is blank.
	ErrWalletNameRequired = errors.New("wallet name is required")

	// ErrWalletNameTooLong is returned when the wallet name exceeds the maximum length.
	ErrWalletNameTooLong = errors.New("wallet name too long")

	// ErrWalletNameExists is returned when another wallet already uses the name.
	ErrWalletNameExists = errors.New("wallet name already exists")

	// ErrInvalidTransferAmount is returned when a transfer amount is not positive.
	ErrInvalidTransferAmount = errors.New("invalid transfer amount")

	// ErrSameWalletTransfer is returned when sender and receiver are the same wallet.
	ErrSameWalletTransfer = errors.New("sender and receiver must be different wallets")

	// ErrInsufficientBalance is returned when the sender cannot cover a transfer.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrWalletHasHistory is returned when deleting a wallet still referenced by entries or transfers.
	ErrWalletHasHistory = errors.New("wallet has entries or transfers")

	// ErrWalletVersionConflict is returned when a wallet changed since it was read.
	ErrWalletVersionConflict = errors.New("wallet was modified concurrently")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WLT-XXYYYY where XX is the error kind and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWalletNameRequired    WalletErrorCode = "WLT-010001"
	ErrCodeWalletNameTooLong     WalletErrorCode = "WLT-010002"
	ErrCodeWalletNameExists      WalletErrorCode = "WLT-010003"
	ErrCodeInvalidTransferAmount WalletErrorCode = "WLT-010004"
	ErrCodeSameWalletTransfer    WalletErrorCode = "WLT-010005"
	ErrCodeInvalidWalletID       WalletErrorCode = "WLT-010006"
	ErrCodeMissingWalletFields   WalletErrorCode = "WLT-010007"

	// Lookup errors (02XXXX)
	ErrCodeWalletNotFound WalletErrorCode = "WLT-020001"

	// Invariant errors (03XXXX)
	ErrCodeInsufficientBalance WalletErrorCode = "WLT-030001"

	// Conflict errors (04XXXX)
	ErrCodeWalletHasHistory      WalletErrorCode = "WLT-040001"
	ErrCodeWalletVersionConflict WalletErrorCode = "WLT-040002"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// Kind returns the taxonomy kind encoded in the error code.
func (e *WalletError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
