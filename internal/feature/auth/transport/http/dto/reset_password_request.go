package dto

// ResetPasswordReq represents the request body for the /reset-password/:token endpoint.
type ResetPasswordReq struct {
	Password string `json:"password" binding:"required,min=8"`
}
