package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeConstraintViolation  = "CONSTRAINT_VIOLATION"
	CodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	CodeTransactionAbort     = "TRANSACTION_ABORT"
	CodeInvalidState         = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
