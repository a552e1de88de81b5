package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для общих ошибок
бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrConflict - фабрика для конфликтов уникальных ключей.
// Оригинальный бекенд отвечал 400 на дубликат email, сохраняем это.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrRetryableConflict - проигравший гонку за уникальный токен.
// Клиент может просто повторить запрос.
func ErrRetryableConflict(err error, domain string) *AppError {
	return Wrap(err, CodeConflict, domain, "Concurrent request in progress, please retry", http.StatusConflict)
}

// --- Auth ---

// ErrEmailAlreadyExists - email уже занят в рамках данного варианта принципала
var ErrEmailAlreadyExists = New(
	CodeConflict,
	"auth",
	"Account already exists with this email",
	http.StatusBadRequest,
)

// ErrAccountNotFound - аккаунт с таким email не зарегистрирован
var ErrAccountNotFound = New(
	CodeNotFound,
	"auth",
	"Account with this email not found",
	http.StatusNotFound,
)

// ErrInvalidCredentials - неверный email, пароль или название организации
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

// ErrInvalidToken - неверный или просроченный токен (refresh, verify, reset)
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"We couldn't verify your request. The link may have expired or is invalid.",
	http.StatusBadRequest,
)

// ErrRefreshTokenMissing - refresh-кука отсутствует в запросе
var ErrRefreshTokenMissing = New(
	CodeInvalidToken,
	"auth",
	"No refresh token provided",
	http.StatusForbidden,
)

// ErrRefreshTokenInvalid - подпись refresh-токена невалидна или он истек
var ErrRefreshTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired refresh token",
	http.StatusForbidden,
)

// ErrTokenExpired - срок действия verification/reset токена вышел
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"We couldn't verify your email. The link may have expired or is invalid.",
	http.StatusBadRequest,
)

// ErrPasswordMismatch - password и confirmPassword не совпадают
var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Password does not match",
	http.StatusBadRequest,
)

// --- Постинги ---

// ErrPostingNotFound - постинг не существует, неактивен или принадлежит другой организации
var ErrPostingNotFound = New(
	CodeNotFound,
	"posting",
	"Posting not found",
	http.StatusNotFound,
)
