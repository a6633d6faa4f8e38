package schemas

import (
	"time"

	"github.com/sirdesai22/staffing-service/internal/models"
)

type EngineerCreate struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         *string       `json:"phone"`
	Skills        models.Skills `json:"skills"`
	Status        string        `json:"status"`
	AvailableDate *Date         `json:"available_date"`
}

// EngineerUpdate carries only the attributes the caller wants to change.
type EngineerUpdate struct {
	Name          Field[string]        `json:"name"`
	Email         Field[string]        `json:"email"`
	Phone         Field[string]        `json:"phone"`
	Skills        Field[models.Skills] `json:"skills"`
	Status        Field[string]        `json:"status"`
	AvailableDate Field[Date]          `json:"available_date"`
}

type Engineer struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         *string       `json:"phone"`
	Skills        models.Skills `json:"skills"`
	Status        string        `json:"status"`
	AvailableDate *Date         `json:"available_date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
