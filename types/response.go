package types

type ReplyResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DiagnosticResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Response string `json:"response"`
}
