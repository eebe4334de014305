/**
 * @projectName: GuidePlatform
 * @package: errorx
 * @className: codes
 * @description: 统一错误码定义
 * @version: 1.0
 */

package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 2xxx    - 订单服务错误
// 3xxx    - 地陪服务错误
// 4xxx    - 通知服务错误

const (
	CodeSuccess            = 0    // 成功
	CodeInternalError      = 1000 // 内部服务器错误
	CodeInvalidParams      = 1001 // 参数校验失败
	CodeUnauthorized       = 1002 // 未授权访问
	CodeForbidden          = 1003 // 禁止访问
	CodeNotFound           = 1004 // 资源不存在
	CodeTooManyRequests    = 1005 // 请求过于频繁
	CodeServiceUnavailable = 1006 // 服务暂不可用
	CodeTimeout            = 1007 // 请求超时
	CodeDBError            = 1008 // 数据库错误
	CodeCacheError         = 1009 // 缓存错误
	CodeLoginRequired      = 1011 // 需要登录
	CodeTokenInvalid       = 1012 // Token无效
	CodeTokenExpired       = 1013 // Token已过期

	// 订单服务 - 状态机 2001-2020
	CodeOrderNotFound          = 2001 // 订单不存在
	CodeOrderInvalidTransition = 2002 // 无效的订单状态转换
	CodeOrderAlreadyAssigned   = 2003 // 订单已分配地陪
	CodeOrderNoGuideAvailable  = 2004 // 无可分配的地陪
	CodeOrderPermissionDeny    = 2005 // 无权操作此订单

	// 订单服务 - 支付/退款 2101-2120
	CodeOrderPaymentRequired   = 2101 // 订单尚未收款
	CodeOrderPaymentInvalid    = 2102 // 收款信息无效
	CodeOrderRefundInvalid     = 2103 // 退款信息无效
	CodeOrderRefundExceedTotal = 2104 // 退款金额超过订单总额
	CodeOrderRefundNotPending  = 2105 // 当前无待处理的退款申请

	// 订单服务 - 投诉 2201-2210
	CodeComplaintNotFound = 2201 // 投诉记录不存在
	CodeComplaintClosed   = 2202 // 投诉已关闭

	// 地陪服务 - 申请 3001-3020
	CodeApplicationNotFound      = 3001 // 申请记录不存在
	CodeApplicationAlreadyExist  = 3002 // 已有进行中的申请
	CodeApplicationCannotSubmit  = 3003 // 当前状态不允许提交申请
	CodeApplicationCannotReview  = 3004 // 当前状态不允许审核
	CodeApplicationCannotCancel  = 3005 // 当前状态不允许取消
	CodeApplicationInvalidStatus = 3006 // 无效的申请状态转换

	// 地陪服务 - 评审规则 3101-3110
	CodeRubricConfigUnavailable = 3101 // 评审规则配置不可用
	CodeRubricCriterionUnknown  = 3102 // 评审规则未实现

	// 地陪服务 - 档案 3201-3210
	CodeGuideNotFound    = 3201 // 地陪不存在
	CodeGuideUnavailable = 3202 // 地陪当前不可接单

	// 地陪服务 - OCR 3301-3310
	CodeOcrServiceUnavailable = 3301 // OCR服务不可用
	CodeOcrRecognizeFailed    = 3302 // OCR识别失败
	CodeOcrConfigInvalid      = 3303 // OCR配置无效

	// 通知服务 4xxx
	CodeNotificationNotFound = 4001 // 通知不存在
)

// codeMessages 错误码对应的默认消息
var codeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInternalError:      "内部服务器错误",
	CodeInvalidParams:      "参数校验失败",
	CodeUnauthorized:       "未授权访问",
	CodeForbidden:          "禁止访问",
	CodeNotFound:           "资源不存在",
	CodeTooManyRequests:    "请求过于频繁，请稍后再试",
	CodeServiceUnavailable: "服务暂不可用",
	CodeTimeout:            "请求超时",
	CodeDBError:            "数据库错误",
	CodeCacheError:         "缓存错误",
	CodeLoginRequired:      "请先登录",
	CodeTokenInvalid:       "登录状态无效",
	CodeTokenExpired:       "登录已过期",

	CodeOrderNotFound:          "订单不存在",
	CodeOrderInvalidTransition: "当前订单状态不允许此操作",
	CodeOrderAlreadyAssigned:   "订单已分配地陪，请勿重复分配",
	CodeOrderNoGuideAvailable:  "当前城市暂无可接单的地陪",
	CodeOrderPermissionDeny:    "无权操作此订单",
	CodeOrderPaymentRequired:   "订单尚未收款，无法执行此操作",
	CodeOrderPaymentInvalid:    "收款信息无效",
	CodeOrderRefundInvalid:     "退款方式和收款账户不能为空",
	CodeOrderRefundExceedTotal: "退款金额不能超过订单总额",
	CodeOrderRefundNotPending:  "当前没有待处理的退款申请",
	CodeComplaintNotFound:      "投诉记录不存在",
	CodeComplaintClosed:        "投诉已关闭，无法重复处理",

	CodeApplicationNotFound:      "申请记录不存在",
	CodeApplicationAlreadyExist:  "您已有进行中的申请，请勿重复提交",
	CodeApplicationCannotSubmit:  "当前状态不允许提交申请",
	CodeApplicationCannotReview:  "当前状态不允许审核",
	CodeApplicationCannotCancel:  "当前状态不允许取消",
	CodeApplicationInvalidStatus: "无效的申请状态转换",
	CodeRubricConfigUnavailable:  "评审规则配置不可用，请联系管理员",
	CodeRubricCriterionUnknown:   "评审规则未实现，请联系管理员",
	CodeGuideNotFound:            "地陪不存在",
	CodeGuideUnavailable:         "该地陪当前不可接单",
	CodeOcrServiceUnavailable:    "OCR服务暂不可用",
	CodeOcrRecognizeFailed:       "证件识别失败，请人工核对",
	CodeOcrConfigInvalid:         "OCR配置无效",

	CodeNotificationNotFound: "通知不存在",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "未知错误"
}

// IsValidCode 判断是否为有效的业务错误码
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
