package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks unexpected server failures.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetimes.
	DateTimeFormat = "2006-01-02 15:04:05"
)
