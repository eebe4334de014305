// ============================================================================
// JWT 工具
// ============================================================================

package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guide-platform/common/constants"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
)

type Role string

const (
	RoleCustomer Role = constants.RoleCustomer
	RoleGuide    Role = constants.RoleGuide
	RoleAdmin    Role = constants.RoleAdmin
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidToken = errors.New("invalid token")
)

// AuthConfig JWT 签发配置
type AuthConfig struct {
	Secret string
	Expire int64 // 秒
}

// Claims 自定义载荷
type Claims struct {
	UserID int64  `json:"userId"`
	Role   Role   `json:"role"`
	JwtID  string `json:"jwtId"`
	jwt.RegisteredClaims
}

// TokenResult 签发结果
type TokenResult struct {
	Token    string
	ExpireAt int64
}

// ValidateRole 校验角色是否合法
func ValidateRole(role Role) error {
	switch role {
	case RoleCustomer, RoleGuide, RoleAdmin:
		return nil
	}
	return ErrInvalidRole
}

// GenerateToken 签发访问 Token
func GenerateToken(userID int64, role Role, cfg AuthConfig, jwtID string) (TokenResult, error) {
	if err := ValidateRole(role); err != nil {
		return TokenResult{}, err
	}
	if cfg.Secret == "" || cfg.Expire <= 0 {
		return TokenResult{}, errors.New("invalid auth config")
	}

	now := time.Now()
	expireAt := now.Add(time.Duration(cfg.Expire) * time.Second)
	claims := Claims{
		UserID: userID,
		Role:   role,
		JwtID:  jwtID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expireAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return TokenResult{}, err
	}

	return TokenResult{Token: signed, ExpireAt: expireAt.Unix()}, nil
}

// ParseToken 解析并校验 Token
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsTokenExpired 判断解析错误是否为过期
func IsTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

// ==================== 角色辅助 ====================

// IsAdmin 判断上下文中的角色是否为管理员
func IsAdmin(ctx context.Context) bool {
	role, ok := roleFromContext(ctx)
	return ok && role == RoleAdmin
}

// IsGuide 判断上下文中的角色是否为地陪
func IsGuide(ctx context.Context) bool {
	role, ok := roleFromContext(ctx)
	return ok && role == RoleGuide
}

func roleFromContext(ctx context.Context) (Role, bool) {
	if ctx == nil {
		return "", false
	}
	value := ctx.Value("role")
	if value == nil {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return Role(v), v != ""
	default:
		role := fmt.Sprint(value)
		return Role(role), role != ""
	}
}

// ==================== Token 黑名单 ====================

// AddTokenToBlacklist 将 Token 加入黑名单（登出时调用）
// TTL 取 Token 剩余有效期，过期后自动清理
func AddTokenToBlacklist(ctx context.Context, rdb *redis.Client, claims *Claims) error {
	if claims == nil || claims.JwtID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	key := constants.TokenBlacklistPrefix + claims.JwtID
	return rdb.Set(ctx, key, 1, ttl).Err()
}

// CheckTokenBlacklist 检查 Token 是否在黑名单中
func CheckTokenBlacklist(ctx context.Context, rdb *redis.Client, secret, tokenString string) (bool, error) {
	claims, err := ParseToken(secret, tokenString)
	if err != nil {
		return false, err
	}
	if claims.JwtID == "" {
		return false, nil
	}
	key := constants.TokenBlacklistPrefix + claims.JwtID
	exists, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
