package service

import "errors"

// Ошибки доменного слоя. Хендлеры транслируют их в HTTP-статусы.
var (
	// ErrNotFound — ресурс с указанным id не существует.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — пользователь аутентифицирован, но прав на операцию нет.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation — некорректный вход (плохой enum, пустое обязательное
	// поле, битый батч позиций).
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyClaimed — подарок уже забронирован другим пользователем.
	ErrAlreadyClaimed = errors.New("item already claimed")

	// ErrNotClaimed — попытка снять бронь с незабронированного подарка.
	ErrNotClaimed = errors.New("item not claimed")

	// ErrDuplicateShare — активный грант для пары (list, user) уже есть.
	ErrDuplicateShare = errors.New("list already shared with this user")

	// ErrSelfShare — попытка выдать грант самому себе.
	ErrSelfShare = errors.New("cannot share list with yourself")

	// ErrUsernameTaken / ErrEmailTaken — нарушение уникальности при регистрации.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")

	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
