package models

// LoginRequest represents the JSON body for user login.
// Either userName or email identifies the account.
// swagger:model LoginRequest
type LoginRequest struct {
	UserName string `json:"userName" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=UserName"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries the text fields of the multipart registration form.
type RegisterRequest struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	UserName string `validate:"required"`
	Password string `validate:"required"`
}

// RefreshRequest is the optional body of the refresh-token endpoint.
// swagger:model RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents the JSON body for changing a password.
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateAccountRequest represents the JSON body for account updates.
// swagger:model UpdateAccountRequest
type UpdateAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// CommentRequest represents the JSON body for adding or editing a comment.
// swagger:model CommentRequest
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// PlaylistRequest represents the JSON body for creating or editing a playlist.
// swagger:model PlaylistRequest
type PlaylistRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// VideoRequest carries the text fields of a video publish form or a JSON update.
// swagger:model VideoRequest
type VideoRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Duration    float64 `json:"duration" validate:"gte=0"`
}

// PageQuery is a page/limit pair parsed from the query string.
type PageQuery struct {
	Page  int64 `validate:"gte=1"`
	Limit int64 `validate:"gte=1"`
}

// ChannelVideosQuery is a PageQuery with the channel listing's page size cap.
type ChannelVideosQuery struct {
	Page  int64 `validate:"gte=1"`
	Limit int64 `validate:"gte=1,lte=50"`
}

// VideoListQuery filters the public video listing.
type VideoListQuery struct {
	PageQuery
	Query    string
	SortBy   string `validate:"omitempty,oneof=createdAt views duration title"`
	SortType string `validate:"omitempty,oneof=asc desc"`
	UserID   string `validate:"omitempty,objectid"`
}
