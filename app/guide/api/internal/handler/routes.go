// ============================================================================
// 路由注册
// ============================================================================
//
// 功能说明：
//   集中管理地陪服务的 HTTP 路由：
//   - 公开路由：地陪列表/详情浏览
//   - 用户路由（需登录）：入驻申请提交、补充材料、进度查询
//   - 后台路由（需管理员权限）：申请列表、自动评审、人工裁决、规则热加载
//
// 中间件执行顺序：
//   CORS -> RequestID -> RateLimit -> Auth/RoleAuth -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	adminhandler "guide-platform/app/guide/api/internal/handler/admin"
	applicationhandler "guide-platform/app/guide/api/internal/handler/application"
	guidehandler "guide-platform/app/guide/api/internal/handler/guide"
	"guide-platform/app/guide/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	// 按执行顺序添加：CORS -> RequestID -> RateLimit
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.CorsMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestIDMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RateLimitMiddleware.Handle(next)
	})

	// ==================== 公开路由 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/guides",
				Handler: guidehandler.ListGuideHandler(ctx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/guides/:id",
				Handler: guidehandler.GetGuideHandler(ctx),
			},
		},
	)

	// ==================== 用户路由（需登录） ====================
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.Auth},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/applications",
					Handler: applicationhandler.SubmitApplicationHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/applications/my",
					Handler: applicationhandler.GetMyApplicationHandler(ctx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/v1/applications/:id",
					Handler: applicationhandler.SupplementApplicationHandler(ctx),
				},
			}...,
		),
	)

	// ==================== 后台路由（需管理员权限） ====================
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.AdminAuth},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/admin/applications",
					Handler: adminhandler.AdminListApplicationHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/admin/applications/:id/auto-review",
					Handler: adminhandler.AutoReviewHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/admin/applications/:id/review",
					Handler: adminhandler.ReviewApplicationHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/admin/review-criteria/reload",
					Handler: adminhandler.ReloadCriteriaHandler(ctx),
				},
			}...,
		),
	)
}
