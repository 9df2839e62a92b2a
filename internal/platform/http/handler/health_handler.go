// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health はロードバランサの死活監視用 /healthz エンドポイントを処理します。
// DB等への依存を持たず、プロセスが応答可能なことのみを報告します。
func Health(c *gin.Context) {
	// 監視系がレスポンスをキャッシュしないよう明示
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
