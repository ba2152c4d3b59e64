// Package dto contains request/response envelopes shared by all HTTP handlers.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Response is the standard API response envelope.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo describes an API error.
type ErrorInfo struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// Meta carries pagination information for list responses.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewSuccessResponse creates a success response with data.
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta.
func NewSuccessResponseWithMeta(data any, total int64, page, limit int) Response {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID.
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// ValidationDetail describes a single field validation failure.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationErrorResponse creates an error response with field-level details.
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      "VALIDATION_ERROR",
			Message:   message,
			RequestID: requestID,
			Details:   details,
		},
	}
}

// ListRequest holds common pagination and sorting query parameters.
type ListRequest struct {
	Page    int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit   int    `form:"limit,default=20" binding:"omitempty,min=1,max=200"`
	SortBy  string `form:"sort_by" binding:"omitempty,max=64"`
	SortDir string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Search  string `form:"search" binding:"omitempty,max=255"`
}

// ToFilter converts the request into a domain list filter.
func (r ListRequest) ToFilter() shared.Filter {
	f := shared.Filter{
		Page:    r.Page,
		Limit:   r.Limit,
		SortBy:  r.SortBy,
		SortDir: r.SortDir,
		Search:  r.Search,
	}
	f.Normalize()
	return f
}

// IDRequest binds a UUID path parameter.
type IDRequest struct {
	ID uuid.UUID `uri:"id" binding:"required"`
}

// TimestampResponse is embedded in resource responses that expose audit times.
type TimestampResponse struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
