package models

import "time"

// Envelope wraps every JSON response. Exactly one of Result and Errors is set.
type Envelope struct {
	Result any        `json:"result"`
	Meta   *Meta      `json:"meta"`
	Errors *ErrorBody `json:"errors"`
}

type Meta struct {
	Code       int    `json:"code"`
	Name       string `json:"name"`
	Page       int    `json:"page,omitempty"`
	PageSize   int    `json:"pageSize,omitempty"`
	TotalItems int64  `json:"totalItems,omitempty"`
	TotalPages int    `json:"totalPages,omitempty"`
}

type ErrorBody struct {
	Code    int          `json:"code"`
	Name    string       `json:"name"`
	Message string       `json:"message"`
	Details ErrorDetails `json:"details"`
}

type ErrorDetails struct {
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId,omitempty"`
}

// JobPage is one page of active jobs plus the numbers needed for meta.
type JobPage struct {
	Jobs       []Job
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

type CreateJobResponse struct {
	Message    string    `json:"message"`
	ExpiryDate time.Time `json:"expiryDate"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
