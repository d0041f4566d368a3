package response

const (
	// DefaultErrorMessage is sent when an error carries no HTTP mapping.
	DefaultErrorMessage = "Internal Server Error"
)

// ErrorResp is the body written for every non-2xx response.
type ErrorResp struct {
	Detail any `json:"detail"`
}
