package dto

type ErrorDetail struct {
	Code    string `json:"code,omitempty" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"must be greater than 0"`
	Field   string `json:"field,omitempty" example:"demand"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username" example:"operator"`
}

type TokenResponse struct {
	Token string `json:"token" example:"Bearer eyJhbGciOiJIUzI1NiIs..."`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}

type WelcomeResponse struct {
	Message string `json:"message" example:"Customer management API"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}
