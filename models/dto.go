package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePostRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=120"`
	Content   string   `json:"content" validate:"required"`
	Published *bool    `json:"published"`
	Tags      []string `json:"tags"`
}

// UpdatePostRequest is a partial patch; nil fields are left untouched.
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}
