package models

import (
	"time"

	"gorm.io/datatypes"
)

// Skills groups skill names by category, e.g. {"languages": ["Go", "SQL"]}.
type Skills map[string][]string

// ---------------- SALES STAFF ----------------
type SalesStaff struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"size:100;not null"`
	Email     string  `gorm:"size:255;uniqueIndex;not null"`
	Phone     *string `gorm:"size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// deleting a sales staff row orphans its projects instead of removing them
	Projects []Project `gorm:"foreignKey:SalesID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (SalesStaff) TableName() string { return "sales_staff" }

// ---------------- ENGINEERS ----------------
type Engineer struct {
	ID            int64                     `gorm:"primaryKey;autoIncrement"`
	Name          string                    `gorm:"size:100;not null"`
	Email         string                    `gorm:"size:255;uniqueIndex;not null"`
	Phone         *string                   `gorm:"size:20"`
	Skills        datatypes.JSONType[Skills] // jsonb on postgres
	Status        string                    `gorm:"size:20;index;not null"`
	AvailableDate *datatypes.Date
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ---------------- PROJECTS ----------------
type Project struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"size:200;not null"`
	Description    *string `gorm:"type:text"`
	RequiredSkills datatypes.JSONType[Skills]
	StartDate      *datatypes.Date
	EndDate        *datatypes.Date
	Status         string `gorm:"size:20;index;not null"`
	SalesID        *int64 `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
