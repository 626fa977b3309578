package model

// User — учётная запись. Пароль хранится как bcrypt-хеш и наружу не отдаётся.
type User struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string `gorm:"not null;uniqueIndex" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `gorm:"not null;uniqueIndex" json:"email"`
}
