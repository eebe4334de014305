// ============================================================================
// Redis Key 前缀定义
// ============================================================================
//
// Key 命名规范：{业务}:{模块}:{标识}
//
// ============================================================================

package constants

const (
	// OrderDetailKeyPrefix 订单详情缓存 order:detail:{orderNo}
	OrderDetailKeyPrefix = "order:detail:"

	// GuideDetailKeyPrefix 地陪档案缓存 guide:detail:{guideId}
	GuideDetailKeyPrefix = "guide:detail:"

	// GuideCityListKeyPrefix 按城市的地陪列表缓存 guide:city:{city}
	GuideCityListKeyPrefix = "guide:city:"

	// ApplicationRateLimitPrefix 申请限流 guide:apply:limit:{userId}
	ApplicationRateLimitPrefix = "guide:apply:limit:"

	// TokenBlacklistPrefix JWT 黑名单 auth:blacklist:{jwtId}
	TokenBlacklistPrefix = "auth:blacklist:"
)

// ==================== 分页默认值 ====================

const (
	DefaultPage     = 1   // 默认页码
	DefaultPageSize = 20  // 默认每页条数
	MaxPageSize     = 100 // 最大每页条数
)
