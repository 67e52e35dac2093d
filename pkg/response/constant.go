package response

const (
	// MessageSuccess is the message returned on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when the real error must not leak.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope code for unexpected failures.
	InternalServerErrorCode = 500
)
