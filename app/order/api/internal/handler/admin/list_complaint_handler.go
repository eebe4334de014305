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

// 后台投诉列表
func ListComplaintHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListComplaintReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := admin.NewListComplaintLogic(r.Context(), svcCtx)
		resp, err := l.ListComplaint(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
