package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenClaim struct {
	OperatorId uint   `json:"operatorId"`
	Username   string `json:"username"`
}
