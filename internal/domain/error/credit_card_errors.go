package error

import "errors"

// Credit card domain errors.
var (
	// ErrCreditCardNotFound is returned when a credit card is not found in the system.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrCreditCardDebtNotFound is returned when a debt is not found in the system.
	ErrCreditCardDebtNotFound = errors.New("credit card debt not found")

	// ErrCreditCardPaymentNotFound is returned when a payment is not found in the system.
	ErrCreditCardPaymentNotFound = errors.New("credit card payment not found")

	// ErrCreditCardNameRequired is returned when the card name is blank.
	ErrCreditCardNameRequired = errors.New("credit card name is required")

	// ErrCreditCardNameTooLong is returned when the card name exceeds the maximum length.
	ErrCreditCardNameTooLong = errors.New("credit card name too long")

	// ErrCreditCardNameExists is returned when another card already uses the name.
	ErrCreditCardNameExists = errors.New("credit card name already exists")

	// ErrInvalidClosingDay is returned when the closing day is out of range.
	ErrInvalidClosingDay = errors.New("invalid closing day")

	// ErrInvalidBillingDueDay is returned when the billing due day is out of range.
	ErrInvalidBillingDueDay = errors.New("invalid billing due day")

	// ErrInvalidMaxDebt is returned when the credit limit is negative.
	ErrInvalidMaxDebt = errors.New("invalid max debt")

	// ErrInvalidLastFourDigits is returned when the last four digits are malformed.
	ErrInvalidLastFourDigits = errors.New("invalid last four digits")

	// ErrInvalidDebtAmount is returned when the debt total is negative.
	ErrInvalidDebtAmount = errors.New("invalid debt amount")

	// ErrInvalidInstallmentCount is returned when the installment count is out of range.
	ErrInvalidInstallmentCount = errors.New("invalid installment count")

	// ErrInvalidInvoicePeriod is returned when an invoice month or year is out of range.
	ErrInvalidInvoicePeriod = errors.New("invalid invoice period")

	// ErrInsufficientCredit is returned when a debt exceeds the available credit.
	ErrInsufficientCredit = errors.New("insufficient available credit")

	// ErrPaymentAlreadySettled is returned when settling a payment twice.
	ErrPaymentAlreadySettled = errors.New("payment already settled")

	// ErrCreditCardHasPendingPayments is returned when archiving a card with pending payments.
	ErrCreditCardHasPendingPayments = errors.New("credit card has pending payments")

	// ErrCreditCardHasDebts is returned when deleting a card that still has debts.
	ErrCreditCardHasDebts = errors.New("credit card has debts")

	// ErrDebtHasSettledPayments is returned when deleting a debt that was partially paid.
	ErrDebtHasSettledPayments = errors.New("debt has settled payments")
)

// CreditCardErrorCode defines error codes for credit card errors.
// Format: CRC-XXYYYY where XX is the error kind and YYYY is specific error.
type CreditCardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCreditCardNameRequired  CreditCardErrorCode = "CRC-010001"
	ErrCodeCreditCardNameExists    CreditCardErrorCode = "CRC-010002"
	ErrCodeInvalidClosingDay       CreditCardErrorCode = "CRC-010003"
	ErrCodeInvalidBillingDueDay    CreditCardErrorCode = "CRC-010004"
	ErrCodeInvalidMaxDebt          CreditCardErrorCode = "CRC-010005"
	ErrCodeInvalidLastFourDigits   CreditCardErrorCode = "CRC-010006"
	ErrCodeInvalidDebtAmount       CreditCardErrorCode = "CRC-010007"
	ErrCodeInvalidInstallmentCount CreditCardErrorCode = "CRC-010008"
	ErrCodeInvalidInvoicePeriod    CreditCardErrorCode = "CRC-010009"
	ErrCodeMissingCreditCardFields CreditCardErrorCode = "CRC-010010"
	ErrCodeCreditCardNameTooLong   CreditCardErrorCode = "CRC-010011"

	// Lookup errors (02XXXX)
	ErrCodeCreditCardNotFound        CreditCardErrorCode = "CRC-020001"
	ErrCodeCreditCardDebtNotFound    CreditCardErrorCode = "CRC-020002"
	ErrCodeCreditCardPaymentNotFound CreditCardErrorCode = "CRC-020003"
	ErrCodeDebtCategoryNotFound      CreditCardErrorCode = "CRC-020004"
	ErrCodeSettlingWalletNotFound    CreditCardErrorCode = "CRC-020005"

	// Invariant errors (03XXXX)
	ErrCodeInsufficientCredit           CreditCardErrorCode = "CRC-030001"
	ErrCodePaymentAlreadySettled        CreditCardErrorCode = "CRC-030002"
	ErrCodeCreditCardHasPendingPayments CreditCardErrorCode = "CRC-030003"

	// Conflict errors (04XXXX)
	ErrCodeCreditCardHasDebts     CreditCardErrorCode = "CRC-040001"
	ErrCodeDebtHasSettledPayments CreditCardErrorCode = "CRC-040002"
)

// CreditCardError represents a credit card error with code and message.
type CreditCardError struct {
	Code    CreditCardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CreditCardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CreditCardError) Unwrap() error {
	return e.Err
}

// Kind returns the taxonomy kind encoded in the error code.
func (e *CreditCardError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewCreditCardError creates a new CreditCardError with the given code and message.
func NewCreditCardError(code CreditCardErrorCode, message string, err error) *CreditCardError {
	return &CreditCardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
