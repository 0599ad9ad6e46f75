package dto

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@campushub.edu"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"3600"`
	Email     string `json:"email"`
	Role      string `json:"role" example:"admin"`
}
