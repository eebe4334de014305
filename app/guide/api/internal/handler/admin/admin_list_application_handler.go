// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"net/http"

	"guide-platform/app/guide/api/internal/logic/admin"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 后台申请列表
func AdminListApplicationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AdminListApplicationReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := admin.NewAdminListApplicationLogic(r.Context(), svcCtx)
		resp, err := l.AdminListApplication(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
