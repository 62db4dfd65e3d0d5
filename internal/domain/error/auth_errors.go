package error

// AuthErrorCode defines error codes raised by the HTTP middleware.
// They describe the request rather than a domain aggregate and carry no kind.
type AuthErrorCode string

const (
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020003"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)
