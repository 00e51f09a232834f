package dto

import "github.com/Tushar3330/Mytube/internal/apperrors"

// APIResponse wraps every successful response.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// APIErrorResponse wraps every failed response.
type APIErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	if message == "" {
		message = "Success"
	}
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

func NewAPIErrorResponse(err *apperrors.AppError) APIErrorResponse {
	errs := err.Errors
	if errs == nil {
		errs = []string{}
	}
	return APIErrorResponse{
		StatusCode: err.StatusCode,
		Message:    err.Message,
		Success:    false,
		Errors:     errs,
	}
}
