// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"net/http"

	"guide-platform/app/guide/api/internal/logic/admin"
	"guide-platform/app/guide/api/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 评审规则热加载
func ReloadCriteriaHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := admin.NewReloadCriteriaLogic(r.Context(), svcCtx)
		resp, err := l.ReloadCriteria()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
