package server

const (
	statusSuccess = "success"
	statusError   = "error"
)

// StatusResponse is the JSON acknowledgement returned to the webhook caller.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func successResponse() StatusResponse {
	return StatusResponse{Status: statusSuccess}
}

func errorResponse(message string) StatusResponse {
	return StatusResponse{Status: statusError, Message: message}
}
