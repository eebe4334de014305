package response

import (
	"context"
	"net/http"

	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageData 分页数据结构
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// SetupGlobalErrorHandler 设置 go-zero 全局错误处理器
// 必须在 server.Start() 之前调用，保证 httpx.ErrorCtx 输出统一的响应格式：
//
//	不设置时：{"error": "订单不存在"}
//	设置后：  {"code": 2001, "message": "订单不存在"}
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, interface{}) {
		bizErr := errorx.FromError(err)
		return getHttpStatus(bizErr.Code), &Response{
			Code:    bizErr.Code,
			Message: bizErr.Message,
		}
	})
}

// Success 成功响应
func Success(w http.ResponseWriter, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	}
	httpx.OkJson(w, resp)
}

// SuccessWithMessage 成功响应（自定义消息）
func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: message,
		Data:    data,
	}
	httpx.OkJson(w, resp)
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(w http.ResponseWriter, list interface{}, total int64, page, pageSize int) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data: PageData{
			List:     list,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		},
	}
	httpx.OkJson(w, resp)
}

// Fail 失败响应（使用 BizError）
func Fail(w http.ResponseWriter, err error) {
	bizErr := errorx.FromError(err)
	resp := &Response{
		Code:    bizErr.Code,
		Message: bizErr.Message,
	}
	httpx.WriteJson(w, getHttpStatus(bizErr.Code), resp)
}

// FailWithCode 失败响应（指定错误码）
func FailWithCode(w http.ResponseWriter, code int) {
	resp := &Response{
		Code:    code,
		Message: errorx.GetMessage(code),
	}
	httpx.WriteJson(w, getHttpStatus(code), resp)
}

// Error 错误响应（简化版，用于中间件）
func Error(w http.ResponseWriter, code int, message string) {
	resp := &Response{
		Code:    code,
		Message: message,
	}
	httpx.WriteJson(w, code, resp)
}

// getHttpStatus 根据业务错误码映射 HTTP 状态码
func getHttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeInvalidParams:
		return http.StatusBadRequest
	case errorx.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		// 其他业务错误返回 200，但 code 非 0
		return http.StatusOK
	}
}
