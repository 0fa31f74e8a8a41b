package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "GrupoProtect"
	JWTExpirationTime        = time.Hour * 24
)

// AdminClaims Token 中携带的管理员身份信息
type AdminClaims struct {
	AdminID uint64   `json:"admin_id"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}
