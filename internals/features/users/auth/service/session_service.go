package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"ncb_backend/internals/features/users/auth/model"
)

// GenerateToken returns 32 random bytes hex-encoded (64 chars).
func GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func CreateSession(db *gorm.DB, userID uint, ttl time.Duration) (*model.SessionModel, error) {
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}
	session := model.SessionModel{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes the row for a token. Unknown tokens are not an
// error; logout is idempotent.
func DeleteSession(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&model.SessionModel{}).Error
}
