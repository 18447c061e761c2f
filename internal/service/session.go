// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timeclock/internal/cache"
	"timeclock/internal/model"

	"github.com/google/uuid"
)

const refreshKeyPrefix = "refresh:"

var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
	newTokenID    = uuid.NewString
)

// RefreshSession 為存放在 Redis 的 refresh token 負載
type RefreshSession struct {
	UserID string         `json:"user_id"`
	Role   model.UserRole `json:"role"`
}

// IssueRefreshToken 產生不透明 refresh token 並以 TTL 寫入 Redis
func IssueRefreshToken(ctx context.Context, rdb cache.Cache, user model.User, ttl time.Duration) (string, error) {
	token := newTokenID()
	payload, err := jsonMarshal(RefreshSession{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	if err := rdb.Set(ctx, refreshKeyPrefix+token, payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	return token, nil
}

// ValidateRefreshToken 驗證 refresh token 是否仍存活並回傳其負載
func ValidateRefreshToken(ctx context.Context, rdb cache.Cache, token string) (*RefreshSession, error) {
	raw, err := rdb.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("ValidateRefreshToken: %w", err)
	}
	var sess RefreshSession
	if err := jsonUnmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("ValidateRefreshToken: %w", err)
	}
	return &sess, nil
}

// RevokeRefreshToken 使 refresh token 失效；換發時舊 token 一併撤銷
func RevokeRefreshToken(ctx context.Context, rdb cache.Cache, token string) error {
	if err := rdb.Del(ctx, refreshKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("RevokeRefreshToken: %w", err)
	}
	return nil
}
