package dto

type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}
