package dto

// Response is the envelope of every JSON response: success and message,
// plus the payload under its own key, e.g. "partner" or "contacts"
type Response map[string]any

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(message string) Response {
	return Response{"success": true, "message": message}
}

// With adds a payload under key
func (r Response) With(key string, value any) Response {
	r[key] = value
	return r
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"Partner not found"`
	Code      string `json:"code" example:"ERR_NOT_FOUND"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      code,
		RequestID: requestID,
	}
}

// Pagination describes one page of a list response
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the page count for total items
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// LegacyTextRequest carries contacts or addresses in the legacy text format
type LegacyTextRequest struct {
	Text string `json:"text"`
}
