package dto

// ForgotPasswordReq represents the request body for the /forgot-password endpoint.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}
