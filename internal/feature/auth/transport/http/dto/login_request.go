// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// パスワード長はログイン時には検証しません。保存済みハッシュとの照合で
// 十分であり、過去の要件で作られたアカウントを締め出さないためです。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
