package models

import (
	json "github.com/goccy/go-json"
)

var jsonMarshal = json.Marshal

// ApiResponse is the success envelope returned by every endpoint.
// swagger:model ApiResponse
type ApiResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewApiResponse builds a success envelope. Success follows the status code.
func NewApiResponse(statusCode int, data any, message string) ApiResponse {
	if message == "" {
		message = "Success"
	}
	return ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// ErrorResponse is the error envelope.
// swagger:model ErrorResponse
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// NewErrorResponse builds an error envelope; errors is never null.
func NewErrorResponse(statusCode int, message string, errs []string) ErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

// Health is the healthcheck payload.
type Health struct {
	Status    string `json:"status"`
	TimeStamp string `json:"timeStamp"`
}
