// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package guide

import (
	"net/http"

	"guide-platform/app/guide/api/internal/logic/guide"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 地陪详情
func GetGuideHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetGuideReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := guide.NewGetGuideLogic(r.Context(), svcCtx)
		resp, err := l.GetGuide(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
