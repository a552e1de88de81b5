package dto

// SignupRequest тело запроса регистрации
type SignupRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=2,max=50"`
	LastName     string `json:"lastName" validate:"required,min=2,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Organization string `json:"organization" validate:"omitempty,min=2,max=100"`
}

// SigninRequest тело запроса входа
type SigninRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Organization string `json:"organization" validate:"omitempty,min=2,max=100"`
}

// ForgotPasswordRequest запрос на отправку ссылки сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest запрос установки нового пароля по токену
type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UpdateProfileRequest частичное обновление профиля
type UpdateProfileRequest struct {
	FirstName    string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName     string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Organization string `json:"organization" validate:"omitempty,min=2,max=100"`
}
