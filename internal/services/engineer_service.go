package services

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/models"
	"github.com/sirdesai22/staffing-service/internal/schemas"
)

const engineerEntity = "engineer"

// EngineerFilter narrows ListEngineers; empty fields are ignored.
type EngineerFilter struct {
	Status string
}

func GetEngineer(ctx context.Context, db *gorm.DB, id int64) (out schemas.Engineer, err error) {
	defer func() { observe(engineerEntity, "get", err) }()

	var e models.Engineer
	if err = db.WithContext(ctx).First(&e, id).Error; err != nil {
		return schemas.Engineer{}, wrap("get engineer", err)
	}
	return toEngineer(e), nil
}

func ListEngineers(ctx context.Context, db *gorm.DB, page Page, filter EngineerFilter) (out []schemas.Engineer, err error) {
	defer func() { observe(engineerEntity, "list", err) }()

	page = page.normalize()
	q := db.WithContext(ctx).Model(&models.Engineer{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var rows []models.Engineer
	if err = q.Order("id").Offset(page.Skip).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, wrap("list engineers", err)
	}
	return slice.Map(rows, func(idx int, src models.Engineer) schemas.Engineer {
		return toEngineer(src)
	}), nil
}

func CreateEngineer(ctx context.Context, db *gorm.DB, in schemas.EngineerCreate) (out schemas.Engineer, err error) {
	defer func() { observe(engineerEntity, "create", err) }()

	e := models.Engineer{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Skills:        datatypes.NewJSONType(skillsOrEmpty(in.Skills)),
		Status:        in.Status,
		AvailableDate: toModelDate(in.AvailableDate),
	}
	if err = db.WithContext(ctx).Create(&e).Error; err != nil {
		return schemas.Engineer{}, wrap("create engineer", err)
	}
	return toEngineer(e), nil
}

// UpdateEngineer writes only the attributes present in the payload and
// returns the row as stored afterwards.
func UpdateEngineer(ctx context.Context, db *gorm.DB, id int64, in schemas.EngineerUpdate) (out schemas.Engineer, err error) {
	defer func() { observe(engineerEntity, "update", err) }()

	var e models.Engineer
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}
		changes := engineerChanges(in)
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&e).Updates(changes).Error; err != nil {
			return err
		}
		e = models.Engineer{}
		return tx.First(&e, id).Error
	})
	if err != nil {
		return schemas.Engineer{}, wrap("update engineer", err)
	}
	return toEngineer(e), nil
}

// DeleteEngineer reports false when no engineer has the id.
func DeleteEngineer(ctx context.Context, db *gorm.DB, id int64) (deleted bool, err error) {
	res := db.WithContext(ctx).Delete(&models.Engineer{}, id)
	if res.Error != nil {
		err = wrap("delete engineer", res.Error)
		observe(engineerEntity, "delete", err)
		return false, err
	}
	if res.RowsAffected == 0 {
		observe(engineerEntity, "delete", ErrNotFound)
		return false, nil
	}
	observe(engineerEntity, "delete", nil)
	return true, nil
}

func engineerChanges(in schemas.EngineerUpdate) map[string]any {
	changes := make(map[string]any)
	setValue(changes, "name", in.Name)
	setValue(changes, "email", in.Email)
	setValue(changes, "phone", in.Phone)
	setSkills(changes, "skills", in.Skills)
	setValue(changes, "status", in.Status)
	setDate(changes, "available_date", in.AvailableDate)
	return changes
}

func toEngineer(e models.Engineer) schemas.Engineer {
	return schemas.Engineer{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Skills:        skillsOrEmpty(e.Skills.Data()),
		Status:        e.Status,
		AvailableDate: fromModelDate(e.AvailableDate),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
