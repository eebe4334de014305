// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package application

import (
	"net/http"

	"guide-platform/app/guide/api/internal/logic/application"
	"guide-platform/app/guide/api/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 我的申请详情
func GetMyApplicationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := application.NewGetMyApplicationLogic(r.Context(), svcCtx)
		resp, err := l.GetMyApplication()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
