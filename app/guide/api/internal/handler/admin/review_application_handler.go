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

// 人工审核裁决
func ReviewApplicationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ReviewApplicationReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := admin.NewReviewApplicationLogic(r.Context(), svcCtx)
		resp, err := l.ReviewApplication(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
