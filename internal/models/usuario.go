package models

import "time"

type Usuario struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:100;not null" json:"nome"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Senha string `gorm:"size:255;not null" json:"-"`
	Admin bool   `gorm:"not null;default:false" json:"admin"`

	// Token da sessão atual; vazio quando deslogado.
	Token string `gorm:"size:64;index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
