// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package application

import (
	"net/http"

	"guide-platform/app/guide/api/internal/logic/application"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 提交入驻申请
func SubmitApplicationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitApplicationReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewSubmitApplicationLogic(r.Context(), svcCtx)
		resp, err := l.SubmitApplication(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
