package services

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sirdesai22/staffing-service/internal/models"
	"github.com/sirdesai22/staffing-service/internal/schemas"
)

func toModelDate(d *schemas.Date) *datatypes.Date {
	if d == nil {
		return nil
	}
	md := datatypes.Date(d.Time())
	return &md
}

func fromModelDate(d *datatypes.Date) *schemas.Date {
	if d == nil {
		return nil
	}
	sd := schemas.Date(time.Time(*d))
	return &sd
}

func skillsOrEmpty(s models.Skills) models.Skills {
	if s == nil {
		return models.Skills{}
	}
	return s
}

// The set* helpers copy present update fields into a gorm column map.
// An explicit null becomes SQL NULL.

func setValue[T any](changes map[string]any, column string, f schemas.Field[T]) {
	if !f.Set {
		return
	}
	if f.Null {
		changes[column] = nil
		return
	}
	changes[column] = f.Value
}

func setDate(changes map[string]any, column string, f schemas.Field[schemas.Date]) {
	if !f.Set {
		return
	}
	if f.Null {
		changes[column] = nil
		return
	}
	changes[column] = datatypes.Date(f.Value.Time())
}

func setSkills(changes map[string]any, column string, f schemas.Field[models.Skills]) {
	if !f.Set {
		return
	}
	if f.Null {
		changes[column] = nil
		return
	}
	changes[column] = datatypes.NewJSONType(skillsOrEmpty(f.Value))
}
