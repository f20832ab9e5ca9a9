package auth

import "github.com/heartmarshall/meetsum-backend/internal/domain"

// AuthResult is returned by Register, Login, Refresh and ZoomCallback.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
