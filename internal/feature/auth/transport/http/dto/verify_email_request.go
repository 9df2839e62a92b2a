package dto

// VerifyEmailReq represents the request body for the /verify-email endpoint.
type VerifyEmailReq struct {
	Code string `json:"code" binding:"required"`
}
