package middleware

import (
	"net/http"
	"strings"

	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"
	"guide-platform/common/response"
	"guide-platform/common/utils/jwt"

	"github.com/go-redis/redis/v8"
)

// RoleAuthMiddleware 角色校验中间件
// 必须挂在 AuthMiddleware 之后（依赖上下文中的 userId/role）
type RoleAuthMiddleware struct {
	redis        *redis.Client
	accessSecret string
	role         jwt.Role
}

// NewAdminRoleMiddleware 创建管理员角色中间件
func NewAdminRoleMiddleware(rdb *redis.Client, accessSecret string) *RoleAuthMiddleware {
	return &RoleAuthMiddleware{redis: rdb, accessSecret: accessSecret, role: jwt.RoleAdmin}
}

// NewGuideRoleMiddleware 创建地陪角色中间件
func NewGuideRoleMiddleware(rdb *redis.Client, accessSecret string) *RoleAuthMiddleware {
	return &RoleAuthMiddleware{redis: rdb, accessSecret: accessSecret, role: jwt.RoleGuide}
}

// Handle 处理角色校验逻辑
func (m *RoleAuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userId := ctxdata.GetUserIDFromCtx(ctx)
		if userId <= 0 {
			response.Fail(w, errorx.ErrUnauthorized())
			return
		}

		if m.role == jwt.RoleAdmin && !jwt.IsAdmin(ctx) {
			response.Fail(w, errorx.ErrForbidden())
			return
		}

		if m.role == jwt.RoleGuide && !jwt.IsGuide(ctx) {
			response.Fail(w, errorx.ErrForbidden())
			return
		}

		// 检查黑名单（登出后的 Token 不可继续使用）
		if m.redis != nil {
			token := r.Header.Get("Authorization")
			parts := strings.Split(token, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				isBlacklisted, _ := jwt.CheckTokenBlacklist(ctx, m.redis, m.accessSecret, parts[1])
				if isBlacklisted {
					response.Fail(w, errorx.ErrInvalidToken())
					return
				}
			}
		}

		next(w, r.WithContext(ctx))
	}
}
