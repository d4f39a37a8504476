package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	MessageSuccess         = "Success"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"

	PermissionErrorCode = 403
	PermissionErrorMsg  = "You don't have permission to do this"

	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	SlackMaxMessageLen = 5000
)
