package error

import "errors"

// Recurring template domain errors.
var (
	// ErrRecurringTemplateNotFound is returned when a recurring template is not found in the system.
	ErrRecurringTemplateNotFound = errors.New("recurring template not found")

	// ErrInvalidRecurringAmount is returned when the template amount is not positive.
	ErrInvalidRecurringAmount = errors.New("invalid recurring amount")

	// ErrStartDateInPast is returned when a new template starts before today.
	ErrStartDateInPast = errors.New("start date is in the past")

	// ErrEndDateBeforeStartDate is returned when the end date precedes the start date.
	ErrEndDateBeforeStartDate = errors.New("end date is before start date")

	// ErrIntervalTooShort is returned when the interval cannot hold one occurrence.
	ErrIntervalTooShort = errors.New("interval too short for frequency")

	// ErrInvalidFrequency is returned when the frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidRecurringType is returned when the template type is not income or expense.
	ErrInvalidRecurringType = errors.New("invalid recurring type")

	// ErrRecurringTemplateInactive is returned when stopping an inactive template.
	ErrRecurringTemplateInactive = errors.New("recurring template already inactive")
)

// RecurringErrorCode defines error codes for recurring template errors.
// Format: RCR-XXYYYY where XX is the error kind and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "RCR-010001"
	ErrCodeStartDateInPast        RecurringErrorCode = "RCR-010002"
	ErrCodeEndDateBeforeStartDate RecurringErrorCode = "RCR-010003"
	ErrCodeIntervalTooShort       RecurringErrorCode = "RCR-010004"
	ErrCodeInvalidFrequency       RecurringErrorCode = "RCR-010005"
	ErrCodeInvalidRecurringType   RecurringErrorCode = "RCR-010006"
	ErrCodeMissingRecurringFields RecurringErrorCode = "RCR-010007"

	// Lookup errors (02XXXX)
	ErrCodeRecurringTemplateNotFound RecurringErrorCode = "RCR-020001"
	ErrCodeRecurringWalletNotFound   RecurringErrorCode = "RCR-020002"
	ErrCodeRecurringCategoryNotFound RecurringErrorCode = "RCR-020003"

	// Invariant errors (03XXXX)
	ErrCodeRecurringTemplateInactive RecurringErrorCode = "RCR-030001"
)

// RecurringError represents a recurring template error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// Kind returns the taxonomy kind encoded in the error code.
func (e *RecurringError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
