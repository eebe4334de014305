// ============================================================================
// 路由注册
// ============================================================================
//
// 功能说明：
//   集中管理订单服务的 HTTP 路由：
//   - 客户路由（需登录）：下单、选地陪、取消、退款申请、投诉
//   - 地陪路由（需地陪权限）：收款、完成、接单列表
//   - 后台路由（需管理员权限）：派单、退款审批、对账、投诉处理
//
// 中间件执行顺序：
//   CORS -> RequestID -> RateLimit -> Auth/RoleAuth -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	adminhandler "guide-platform/app/order/api/internal/handler/admin"
	guidehandler "guide-platform/app/order/api/internal/handler/guide"
	orderhandler "guide-platform/app/order/api/internal/handler/order"
	"guide-platform/app/order/api/internal/svc"

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

	// ==================== 客户路由（需登录） ====================
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.Auth},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/orders",
					Handler: orderhandler.CreateOrderHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/orders",
					Handler: orderhandler.ListOrderHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/orders/:orderNo",
					Handler: orderhandler.GetOrderHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/orders/:orderNo/guide",
					Handler: orderhandler.SelectGuideHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/orders/:orderNo/cancel",
					Handler: orderhandler.CancelOrderHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/orders/:orderNo/refund",
					Handler: orderhandler.RequestRefundHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/orders/:orderNo/complaint",
					Handler: orderhandler.CreateComplaintHandler(ctx),
				},
			}...,
		),
	)

	// ==================== 地陪路由（需地陪权限） ====================
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.GuideAuth},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/guide/orders",
					Handler: guidehandler.GuideOrderListHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/guide/orders/:orderNo/payment",
					Handler: guidehandler.CollectPaymentHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/guide/orders/:orderNo/complete",
					Handler: guidehandler.CompleteOrderHandler(ctx),
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
					Path:    "/api/v1/admin/orders",
					Handler: adminhandler.AdminListOrderHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/admin/orders/:orderNo/assign",
					Handler: adminhandler.AssignGuideHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/admin/orders/:orderNo/refund",
					Handler: adminhandler.ProcessRefundHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/admin/finance/summary",
					Handler: adminhandler.FinanceSummaryHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/admin/complaints",
					Handler: adminhandler.ListComplaintHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/admin/complaints/:id/resolve",
					Handler: adminhandler.ResolveComplaintHandler(ctx),
				},
			}...,
		),
	)
}
