package dto

import "github.com/go-playground/validator/v10"

// Single validator instance shared by all request DTOs.
var validate = validator.New()

// Validate runs struct-tag validation on a request DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// PageRequest is 1-indexed pagination for listings. A page past the end is
// not an error; it yields an empty slice.
type PageRequest struct {
	Page     int `query:"page" validate:"min=0"`
	PageSize int `query:"page_size" validate:"min=0,max=500"`
}

// DefaultPage applies defaults when Page/PageSize are unset.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
}

// PageResponse carries page metadata in list responses.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
