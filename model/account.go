package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email    string `gorm:"uniqueIndex" validate:"omitempty,email" json:"email"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"`
}

type Accounts []Account

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"not null" json:"accountId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Account   Account   `gorm:"foreignKey:AccountId" json:"account"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
