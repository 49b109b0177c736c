package domain

import "time"

// Manager はシフトを編集・公開する運用者アカウント
// 従業員（Employee）はシフトを組まれる側、Manager は組む側という区別
type Manager struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
