// Package handler はbarsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_history/internal/feature/bars/domain/entity"
	"stock_history/internal/feature/bars/transport/http/dto"
)

// BarsUsecase はバーデータ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BarsUsecase interface {
	GetBars(ctx context.Context, symbol string, outputsize int) ([]entity.Bar, error)
}

// BarsHandler はバーデータのHTTPリクエストを処理します。
type BarsHandler struct {
	uc BarsUsecase
}

// NewBarsHandler は指定されたusecaseでBarsHandlerの新しいインスタンスを生成します。
func NewBarsHandler(uc BarsUsecase) *BarsHandler {
	return &BarsHandler{uc: uc}
}

// GetBarsHandler は銘柄コードを受け取り、バーデータをJSONで返します。
//
// エンドポイント例:
// GET /bars/:symbol?outputsize=200
func (h *BarsHandler) GetBarsHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	// 未指定の場合はデフォルト値を使用
	outputsizeStr := c.DefaultQuery("outputsize", "200")
	// 文字列を整数に変換（不正な値はusecase側でデフォルトに丸められる）
	outputsize, _ := strconv.Atoi(outputsizeStr)

	bars, err := h.uc.GetBars(c.Request.Context(), symbol, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := make([]dto.BarResponse, 0, len(bars))
	for _, x := range bars {
		out = append(out, dto.BarResponse{
			Time:   x.Time.UTC().Format("2006-01-02 15:04:05"),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}
