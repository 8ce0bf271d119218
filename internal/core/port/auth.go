package port

import "github.com/hanifwid/printmart/internal/core/domain"

type TokenPayload struct {
	UserID uint64
	Role   domain.UserRole
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
