package model

import "time"

// SharedList — грант доступа: UserID получает право просмотра и брони
// подарков списка ListID, но не право владельца. SharedBy всегда равен
// владельцу списка.
type SharedList struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ListID int64 `gorm:"not null;index:idx_shared_list_user,unique" json:"listId"`
	UserID int64 `gorm:"not null;index:idx_shared_list_user,unique" json:"userId"`

	List *GiftList `gorm:"foreignKey:ListID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	SharedBy int64     `gorm:"not null" json:"sharedBy"`
	SharedAt time.Time `gorm:"autoCreateTime" json:"sharedAt"`
}

// SharedListInfo — грант вместе со списком, на который он выдан.
// Формат ответа GET /api/shared-lists.
type SharedListInfo struct {
	SharedList SharedList `json:"sharedList"`
	GiftList   GiftList   `json:"giftList"`
}
