package models

import "time"

type Produto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Preco     int    `gorm:"not null" json:"preco"`
	Descricao string `gorm:"type:text" json:"descricao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
