package model

import "time"

// Приоритеты подарка.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ValidPriority проверяет принадлежность значения enum-у приоритетов.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// GiftItem — подарок внутри списка. Инвариант: ClaimedBy и ClaimedAt либо
// оба null, либо оба заполнены.
type GiftItem struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ListID int64 `gorm:"not null;index" json:"listId"`

	List *GiftList `gorm:"foreignKey:ListID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Category    string `json:"category,omitempty"`
	Priority    string `gorm:"not null;default:medium" json:"priority"`
	Link        string `json:"link,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`

	// Position задаёт порядок показа внутри списка; не обязан быть
	// непрерывным или уникальным.
	Position int `gorm:"not null;default:0" json:"position"`

	ClaimedBy *int64     `gorm:"index" json:"claimedBy"`
	ClaimedAt *time.Time `json:"claimedAt"`
}

// Claimed — подарок уже забронирован.
func (i *GiftItem) Claimed() bool {
	return i.ClaimedBy != nil
}
