package router

import (
	"github.com/gin-gonic/gin"

	barhandler "stock_history/internal/feature/bars/transport/handler"
	symbolhandler "stock_history/internal/feature/symbollist/transport/handler"
	platformhandler "stock_history/internal/platform/http/handler"
)

func NewRouter(bars *barhandler.BarsHandler, symbols *symbolhandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 保存済みバーの参照
	r.GET("/bars/:symbol", bars.GetBarsHandler)
	// インジェスト対象の銘柄一覧
	r.GET("/symbols", symbols.List)

	return r
}
