package response

const (
	// MessageSuccess is the standard success message.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "something went wrong"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DateFormat renders dates in API responses.
	DateFormat = "2006-01-02"

	// DateTimeFormat renders timestamps in API responses.
	DateTimeFormat = "2006-01-02 15:04:05"
)
