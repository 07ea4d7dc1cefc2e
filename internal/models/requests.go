package models

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Login     string `json:"login" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateAccountRequest is the request body for a profile update.
// Nil fields are left unchanged.
type UpdateAccountRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// NewPostRequest is the request body for post creation
type NewPostRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdatePostRequest is the request body for a post update.
// Nil title/content are left unchanged; tags are added to the existing
// tag set, never replacing it.
type UpdatePostRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

// NewCommentRequest is the request body for adding a comment
type NewCommentRequest struct {
	Message string `json:"message" validate:"required"`
}

// PeriodRequest is the request body for a creation-date range search.
// Dates are in "2006-01-02" format; both bounds are inclusive.
type PeriodRequest struct {
	DateFrom string `json:"dateFrom" validate:"required"`
	DateTo   string `json:"dateTo" validate:"required"`
}

// RolesResponse is the response body for role changes
type RolesResponse struct {
	Login string `json:"login"`
	Roles []Role `json:"roles"`
}

// LikesResponse is the response body for a like increment
type LikesResponse struct {
	Likes int `json:"likes"`
}
