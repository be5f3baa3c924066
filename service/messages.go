package service

// User-facing messages. Provider details never appear in these.
const (
	MsgConfigurationError = "Server configuration error"
	MsgEmptyInput         = "Please enter your question"
	MsgServiceError       = "Service error. Please try again."
	MsgProcessFailed      = "Failed to process request"

	MsgKeyNotConfigured = "API key not configured"
	MsgInvalidAPIKey    = "Invalid API key"
	MsgTestFailed       = "API test failed"
	MsgTestSucceeded    = "Claude API is working correctly"
	MsgUnknownError     = "Unknown error"
)

// RelayMessage returns the message shown to the user for a relay failure.
func RelayMessage(kind ErrorKind) string {
	switch kind {
	case KindConfiguration:
		return MsgConfigurationError
	case KindValidation:
		return MsgEmptyInput
	case KindProvider:
		return MsgServiceError
	default:
		return MsgProcessFailed
	}
}
