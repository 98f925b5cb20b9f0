package dto

// Error is the body of every non-2xx response.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	ErrorValidation      = "validation"
	ErrorUnauthenticated = "unauthenticated"
	ErrorInternal        = "internal"
	ErrorRateLimited     = "rate_limited"
)
