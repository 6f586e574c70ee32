// ================== internal/features/auth/model.go ==================
package auth

// RegisterRequest represents the payload for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required"`
}
