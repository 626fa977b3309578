package service

import "GiftKeeper/internal/model"

// Правила доступа — чистые функции от (пользователь, ресурс, связи).
// Никаких обращений к хранилищу: наличие гранта передаётся снаружи.

// CanReadList: список видит владелец или держатель активного гранта.
func CanReadList(userID int64, list *model.GiftList, hasShare bool) bool {
	return list.UserID == userID || hasShare
}

// CanWriteList: менять список (и его подарки, и шаринг) может только владелец.
func CanWriteList(userID int64, list *model.GiftList) bool {
	return list.UserID == userID
}

// CheckClaim — право брони: подарок свободен, пользователь не владелец
// списка и держит грант на список.
func CheckClaim(userID int64, item *model.GiftItem, list *model.GiftList, hasShare bool) error {
	if item.Claimed() {
		return ErrAlreadyClaimed
	}
	if list.UserID == userID {
		return ErrForbidden // свои подарки бронировать нельзя
	}
	if !hasShare {
		return ErrForbidden
	}
	return nil
}

// CheckUnclaim — снять бронь может только тот, кто её поставил.
// Владелец принудительно снять чужую бронь не может.
func CheckUnclaim(userID int64, item *model.GiftItem) error {
	if !item.Claimed() {
		return ErrNotClaimed
	}
	if *item.ClaimedBy != userID {
		return ErrForbidden
	}
	return nil
}

// CheckShare — выдать грант может только владелец; получатель не владелец
// и ещё не держит грант на этот список.
func CheckShare(ownerID int64, list *model.GiftList, targetID int64, alreadyShared bool) error {
	if !CanWriteList(ownerID, list) {
		return ErrForbidden
	}
	if targetID == list.UserID {
		return ErrSelfShare
	}
	if alreadyShared {
		return ErrDuplicateShare
	}
	return nil
}
