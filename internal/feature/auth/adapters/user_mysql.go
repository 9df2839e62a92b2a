// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create はユーザーをデータベースに追加します。
// メールの一意性はユニークインデックスで保証されるため、存在チェックと
// 挿入が競合しても重複レコードは作られません。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		// テスト用SQLiteなど他方言のユニーク制約違反
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ConsumeVerificationToken は未期限切れの認証コードを持つユーザーを
// 認証済みに更新し、認証フィールドをクリアします。
// 更新はコード一致を条件とするため、同一コードの同時消費は一方のみ成功します。
// 一致するコードがない場合、usecase.ErrTokenNotFoundを返します。
func (r *userMySQL) ConsumeVerificationToken(ctx context.Context, code string, now time.Time) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("verification_token = ? AND verification_token_expires_at > ?", code, now).
			First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrTokenNotFound
			}
			return err
		}

		// コード一致を条件とした更新（競合した消費の勝者判定）
		res := tx.Model(&entity.User{}).
			Where("id = ? AND verification_token = ?", u.ID, code).
			Updates(map[string]interface{}{
				"is_verified":                   true,
				"verification_token":            nil,
				"verification_token_expires_at": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 別のリクエストが先に消費した
			return usecase.ErrTokenNotFound
		}

		u.IsVerified = true
		u.VerificationToken = nil
		u.VerificationTokenExpiresAt = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ConsumeResetToken は未期限切れのリセットトークンを持つユーザーの
// パスワードハッシュを差し替え、リセットフィールドをクリアします。
// 一致するトークンがない場合、usecase.ErrTokenNotFoundを返します。
func (r *userMySQL) ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reset_password_token = ? AND reset_password_expires_at > ?", token, now).
			First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrTokenNotFound
			}
			return err
		}

		res := tx.Model(&entity.User{}).
			Where("id = ? AND reset_password_token = ?", u.ID, token).
			Updates(map[string]interface{}{
				"password":                  passwordHash,
				"reset_password_token":      nil,
				"reset_password_expires_at": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrTokenNotFound
		}

		u.Password = passwordHash
		u.ResetPasswordToken = nil
		u.ResetPasswordExpiresAt = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SetResetToken は指定メールアドレスのユーザーに新しいリセットトークンを設定します。
// 既存の未消費トークンは上書きされ、古いリセットリンクは無効になります。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}

		res := tx.Model(&entity.User{}).
			Where("id = ?", u.ID).
			Updates(map[string]interface{}{
				"reset_password_token":      token,
				"reset_password_expires_at": expiresAt,
			})
		if res.Error != nil {
			return res.Error
		}

		u.ResetPasswordToken = &token
		u.ResetPasswordExpiresAt = &expiresAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}
