package models

import "time"

// Principal - единая модель аутентифицируемой сущности.
// Покрывает оба варианта (candidate/organisation пользователи и employer),
// чтобы две параллельные иерархии не расходились.
type Principal struct {
	BaseModel
	Variant      PrincipalVariant `gorm:"type:varchar(20);not null;uniqueIndex:idx_principals_variant_email" json:"-"`
	Email        string           `gorm:"not null;uniqueIndex:idx_principals_variant_email" json:"email"`
	PasswordHash string           `gorm:"not null" json:"-"`
	Role         Role             `gorm:"type:varchar(20);not null" json:"role"`
	FirstName    string           `gorm:"not null" json:"firstName"`
	LastName     string           `gorm:"not null" json:"lastName"`
	Phone        string           `json:"phone,omitempty"`
	Organization string           `json:"organization,omitempty"`

	// null = email не подтвержден. Выставляется ровно один раз.
	EmailVerifiedAt *time.Time `json:"emailVerified,omitempty"`
}

// IsVerified сообщает, подтвержден ли email
func (p *Principal) IsVerified() bool {
	return p.EmailVerifiedAt != nil
}

// EmailVerificationToken - одноразовый токен подтверждения email.
// У принципала может быть не более одного живого токена: старый
// удаляется при перевыпуске.
type EmailVerificationToken struct {
	BaseModel
	PrincipalID string    `gorm:"type:uuid;not null;uniqueIndex" json:"principalId"`
	Token       string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpireAt    time.Time `gorm:"not null" json:"expireAt"`
}

// PasswordResetToken - одноразовый токен сброса пароля.
// В отличие от verification-токена не удаляется после использования,
// а помечается IsUsed (кроме замены новым).
type PasswordResetToken struct {
	BaseModel
	PrincipalID string    `gorm:"type:uuid;not null;uniqueIndex" json:"principalId"`
	Token       string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpireAt    time.Time `gorm:"not null" json:"expireAt"`
	IsUsed      bool      `gorm:"default:false" json:"isUsed"`
}
