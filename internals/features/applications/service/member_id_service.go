package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"ncb_backend/internals/features/applications/model"
)

var ErrMemberIDExhausted = errors.New("could not allocate a unique membership number")

// GenerateMemberID allocates a human-facing membership number of the form
// "NCB" + two-digit year + four random digits, retrying on collision.
func GenerateMemberID(db *gorm.DB) (string, error) {
	year := time.Now().Format("06")
	for attempt := 0; attempt < 10; attempt++ {
		candidate := fmt.Sprintf("NCB%s%04d", year, rand.Intn(10000))
		var count int64
		if err := db.Model(&model.MembershipApplicationModel{}).
			Where("member_id = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", ErrMemberIDExhausted
}
