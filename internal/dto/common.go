package dto

// Response status values. 4xx failures use "fail", 5xx use "error".
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// SuccessResponse is the envelope wrapping every successful JSON body.
type SuccessResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Success wraps data in the success envelope.
func Success(data interface{}) SuccessResponse {
	return SuccessResponse{Status: StatusSuccess, Data: data}
}

// SuccessPaged wraps a list payload together with its pagination envelope.
func SuccessPaged(data interface{}, p Pagination) SuccessResponse {
	return SuccessResponse{Status: StatusSuccess, Data: data, Pagination: &p}
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Fail builds a client-error (4xx) envelope.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Status: StatusFail, Message: message}
}

// Error builds a server-error (5xx) envelope.
func Error(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}
