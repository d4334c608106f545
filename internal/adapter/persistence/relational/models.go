// Package relational maps clients and estimates onto the clients,
// estimates and estimate_items tables used by the parallel CRUD service.
package relational

import "time"

type ClientModel struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Company string `gorm:"size:255" json:"company"`
	Address string `gorm:"type:text" json:"address"`
}

func (ClientModel) TableName() string { return "clients" }

type EstimateModel struct {
	ID             string              `gorm:"primaryKey;size:64" json:"id"`
	EstimateNumber string              `gorm:"size:64;index" json:"estimate_number"`
	ClientID       string              `gorm:"size:64;index" json:"client_id"`
	SubTotal       float64             `gorm:"type:decimal(12,2)" json:"sub_total"`
	Tax            float64             `gorm:"type:decimal(12,2)" json:"tax"`
	Discount       float64             `gorm:"type:decimal(12,2)" json:"discount"`
	Total          float64             `gorm:"type:decimal(12,2)" json:"total"`
	Status         string              `gorm:"size:20" json:"status"`
	Date           time.Time           `json:"date"`
	DueDate        time.Time           `json:"due_date"`
	Terms          string              `gorm:"type:text" json:"terms"`
	Notes          string              `gorm:"type:text" json:"notes"`
	Logo           string              `gorm:"type:text" json:"logo"`
	CreatedAt      time.Time           `json:"created_at"`
	Items          []EstimateItemModel `gorm:"foreignKey:EstimateID" json:"items"`
}

func (EstimateModel) TableName() string { return "estimates" }

type EstimateItemModel struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	EstimateID  string  `gorm:"size:64;index" json:"estimate_id"`
	Description string  `gorm:"type:text" json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `gorm:"type:decimal(12,2)" json:"rate"`
	Tax         float64 `gorm:"type:decimal(5,2)" json:"tax"`
	Amount      float64 `gorm:"type:decimal(12,2)" json:"amount"`
}

func (EstimateItemModel) TableName() string { return "estimate_items" }
