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

// 自动评审打分
func AutoReviewHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AutoReviewReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := admin.NewAutoReviewLogic(r.Context(), svcCtx)
		resp, err := l.AutoReview(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
