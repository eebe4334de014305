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

// 补充申请材料
func SupplementApplicationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SupplementApplicationReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := application.NewSupplementApplicationLogic(r.Context(), svcCtx)
		resp, err := l.SupplementApplication(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
