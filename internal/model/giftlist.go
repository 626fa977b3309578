package model

import "time"

// Типы списков подарков.
const (
	ListTypeBirthday = "birthday"
	ListTypeWedding  = "wedding"
	ListTypeHoliday  = "holiday"
	ListTypeOther    = "other"
)

// ValidListType проверяет принадлежность значения enum-у типов списка.
func ValidListType(t string) bool {
	switch t {
	case ListTypeBirthday, ListTypeWedding, ListTypeHoliday, ListTypeOther:
		return true
	}
	return false
}

// GiftList — список подарков. Владелец (UserID) и только он может менять список.
type GiftList struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"userId"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	Type        string     `gorm:"not null" json:"type"`
	EventDate   *time.Time `json:"eventDate,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
