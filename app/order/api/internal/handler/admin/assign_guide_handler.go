// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"net/http"

	"guide-platform/app/order/api/internal/logic/admin"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 后台分配地陪
func AssignGuideHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AssignGuideReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := admin.NewAssignGuideLogic(r.Context(), svcCtx)
		resp, err := l.AssignGuide(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
