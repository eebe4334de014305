package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// BizError 业务错误，实现 error 接口
type BizError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *BizError) Error() string {
	return fmt.Sprintf("BizError: code=%d, message=%s", e.Code, e.Message)
}

// GetCode 获取错误码
func (e *BizError) GetCode() int {
	return e.Code
}

// GetMessage 获取错误消息
func (e *BizError) GetMessage() string {
	return e.Message
}

// New 创建业务错误（使用默认消息）
func New(code int) *BizError {
	return &BizError{
		Code:    code,
		Message: GetMessage(code),
	}
}

// NewWithMessage 创建业务错误（自定义消息）
func NewWithMessage(code int, message string) *BizError {
	return &BizError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误，添加上下文信息
func Wrap(code int, err error) *BizError {
	if err == nil {
		return New(code)
	}
	return &BizError{
		Code:    code,
		Message: fmt.Sprintf("%s: %v", GetMessage(code), err),
	}
}

// Is 判断是否为特定错误码
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr.Code == code
	}
	return false
}

// FromError 从 error 转换为 BizError
// 支持以下错误类型：
//  1. *BizError：直接返回
//  2. 其他错误：返回内部错误（隐藏细节）
func FromError(err error) *BizError {
	if err == nil {
		return nil
	}

	// 获取原始错误（支持 errors.Wrap 包装的错误）
	causeErr := errors.Cause(err)

	if bizErr, ok := causeErr.(*BizError); ok {
		return bizErr
	}

	// 非业务错误不暴露细节
	return &BizError{
		Code:    CodeInternalError,
		Message: "内部服务器错误",
	}
}

// ============ 常用错误快捷方法 ============

// ErrInternalError 内部错误
func ErrInternalError() *BizError {
	return New(CodeInternalError)
}

// ErrInvalidParams 参数错误
func ErrInvalidParams(msg string) *BizError {
	if msg == "" {
		return New(CodeInvalidParams)
	}
	return NewWithMessage(CodeInvalidParams, msg)
}

// ErrUnauthorized 未授权
func ErrUnauthorized() *BizError {
	return New(CodeUnauthorized)
}

// ErrForbidden 禁止访问
func ErrForbidden() *BizError {
	return New(CodeForbidden)
}

// ErrNotFound 资源不存在
func ErrNotFound() *BizError {
	return New(CodeNotFound)
}

// ErrInvalidToken Token无效
func ErrInvalidToken() *BizError {
	return New(CodeTokenInvalid)
}

// ErrTooManyRequests 请求过于频繁
func ErrTooManyRequests() *BizError {
	return New(CodeTooManyRequests)
}

// ErrDBError 数据库错误
func ErrDBError(err error) *BizError {
	return Wrap(CodeDBError, err)
}

// ErrCacheError 缓存错误
func ErrCacheError(err error) *BizError {
	return Wrap(CodeCacheError, err)
}

// NewSystemError 创建系统错误
func NewSystemError(msg string) *BizError {
	return NewWithMessage(CodeInternalError, msg)
}

// ============ 订单状态机相关错误 ============

// ErrInvalidTransition 无效的订单状态转换
// 消息中带上当前状态与目标状态，便于前端提示和排障
func ErrInvalidTransition(from, to string) *BizError {
	return NewWithMessage(CodeOrderInvalidTransition,
		fmt.Sprintf("订单状态不允许从「%s」变更为「%s」", from, to))
}

// ErrAlreadyAssigned 订单已分配地陪
func ErrAlreadyAssigned() *BizError {
	return New(CodeOrderAlreadyAssigned)
}

// ErrOrderNotFound 订单不存在
func ErrOrderNotFound() *BizError {
	return New(CodeOrderNotFound)
}

// ErrOrderPermissionDeny 无权操作此订单
func ErrOrderPermissionDeny() *BizError {
	return New(CodeOrderPermissionDeny)
}

// ErrPaymentRequired 订单尚未收款
func ErrPaymentRequired() *BizError {
	return New(CodeOrderPaymentRequired)
}

// ErrPaymentInvalid 收款信息无效
func ErrPaymentInvalid(msg string) *BizError {
	if msg == "" {
		return New(CodeOrderPaymentInvalid)
	}
	return NewWithMessage(CodeOrderPaymentInvalid, msg)
}

// ErrRefundInvalid 退款信息无效
func ErrRefundInvalid() *BizError {
	return New(CodeOrderRefundInvalid)
}

// ErrRefundExceedTotal 退款金额超过订单总额
func ErrRefundExceedTotal() *BizError {
	return New(CodeOrderRefundExceedTotal)
}

// ============ 地陪申请相关错误 ============

// ErrApplicationNotFound 申请记录不存在
func ErrApplicationNotFound() *BizError {
	return New(CodeApplicationNotFound)
}

// ErrApplicationAlreadyExist 已有进行中的申请
func ErrApplicationAlreadyExist() *BizError {
	return New(CodeApplicationAlreadyExist)
}

// ErrApplicationCannotSubmit 当前状态不允许提交
func ErrApplicationCannotSubmit() *BizError {
	return New(CodeApplicationCannotSubmit)
}

// ErrApplicationCannotReview 当前状态不允许审核
func ErrApplicationCannotReview() *BizError {
	return New(CodeApplicationCannotReview)
}

// ErrApplicationInvalidStatus 无效的申请状态转换
func ErrApplicationInvalidStatus(from, to string) *BizError {
	return NewWithMessage(CodeApplicationInvalidStatus,
		fmt.Sprintf("申请状态不允许从「%s」变更为「%s」", from, to))
}

// ErrRubricConfigUnavailable 评审规则配置不可用
func ErrRubricConfigUnavailable() *BizError {
	return New(CodeRubricConfigUnavailable)
}

// ErrGuideNotFound 地陪不存在
func ErrGuideNotFound() *BizError {
	return New(CodeGuideNotFound)
}

// ErrNoGuideAvailable 无可分配的地陪
func ErrNoGuideAvailable() *BizError {
	return New(CodeOrderNoGuideAvailable)
}

// ErrOcrServiceUnavailable OCR服务不可用
func ErrOcrServiceUnavailable() *BizError {
	return New(CodeOcrServiceUnavailable)
}

// ErrOcrRecognizeFailed OCR识别失败
func ErrOcrRecognizeFailed(err error) *BizError {
	return Wrap(CodeOcrRecognizeFailed, err)
}

// ErrOcrConfigInvalid OCR配置无效
func ErrOcrConfigInvalid() *BizError {
	return New(CodeOcrConfigInvalid)
}
