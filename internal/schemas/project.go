package schemas

import (
	"time"

	"github.com/sirdesai22/staffing-service/internal/models"
)

type ProjectCreate struct {
	Name           string        `json:"name"`
	Description    *string       `json:"description"`
	RequiredSkills models.Skills `json:"required_skills"`
	StartDate      *Date         `json:"start_date"`
	EndDate        *Date         `json:"end_date"`
	Status         string        `json:"status"`
	SalesID        int64         `json:"sales_id"`
}

type ProjectUpdate struct {
	Name           Field[string]        `json:"name"`
	Description    Field[string]        `json:"description"`
	RequiredSkills Field[models.Skills] `json:"required_skills"`
	StartDate      Field[Date]          `json:"start_date"`
	EndDate        Field[Date]          `json:"end_date"`
	Status         Field[string]        `json:"status"`
	SalesID        Field[int64]         `json:"sales_id"`
}

type Project struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Description    *string       `json:"description"`
	RequiredSkills models.Skills `json:"required_skills"`
	StartDate      *Date         `json:"start_date"`
	EndDate        *Date         `json:"end_date"`
	Status         string        `json:"status"`
	SalesID        *int64        `json:"sales_id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
