package services

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/models"
	"github.com/sirdesai22/staffing-service/internal/schemas"
)

const projectEntity = "project"

type ProjectFilter struct {
	Status string
}

func GetProject(ctx context.Context, db *gorm.DB, id int64) (out schemas.Project, err error) {
	defer func() { observe(projectEntity, "get", err) }()

	var p models.Project
	if err = db.WithContext(ctx).First(&p, id).Error; err != nil {
		return schemas.Project{}, wrap("get project", err)
	}
	return toProject(p), nil
}

func ListProjects(ctx context.Context, db *gorm.DB, page Page, filter ProjectFilter) (out []schemas.Project, err error) {
	defer func() { observe(projectEntity, "list", err) }()

	page = page.normalize()
	q := db.WithContext(ctx).Model(&models.Project{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var rows []models.Project
	if err = q.Order("id").Offset(page.Skip).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, wrap("list projects", err)
	}
	return slice.Map(rows, func(idx int, src models.Project) schemas.Project {
		return toProject(src)
	}), nil
}

func CreateProject(ctx context.Context, db *gorm.DB, in schemas.ProjectCreate) (out schemas.Project, err error) {
	defer func() { observe(projectEntity, "create", err) }()

	salesID := in.SalesID
	p := models.Project{
		Name:           in.Name,
		Description:    in.Description,
		RequiredSkills: datatypes.NewJSONType(skillsOrEmpty(in.RequiredSkills)),
		StartDate:      toModelDate(in.StartDate),
		EndDate:        toModelDate(in.EndDate),
		Status:         in.Status,
		SalesID:        &salesID,
	}
	if err = db.WithContext(ctx).Create(&p).Error; err != nil {
		return schemas.Project{}, wrap("create project", err)
	}
	return toProject(p), nil
}

// UpdateProject writes only the attributes present in the payload.
func UpdateProject(ctx context.Context, db *gorm.DB, id int64, in schemas.ProjectUpdate) (out schemas.Project, err error) {
	defer func() { observe(projectEntity, "update", err) }()

	var p models.Project
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		changes := projectChanges(in)
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&p).Updates(changes).Error; err != nil {
			return err
		}
		p = models.Project{}
		return tx.First(&p, id).Error
	})
	if err != nil {
		return schemas.Project{}, wrap("update project", err)
	}
	return toProject(p), nil
}

func DeleteProject(ctx context.Context, db *gorm.DB, id int64) (deleted bool, err error) {
	res := db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		err = wrap("delete project", res.Error)
		observe(projectEntity, "delete", err)
		return false, err
	}
	if res.RowsAffected == 0 {
		observe(projectEntity, "delete", ErrNotFound)
		return false, nil
	}
	observe(projectEntity, "delete", nil)
	return true, nil
}

func projectChanges(in schemas.ProjectUpdate) map[string]any {
	changes := make(map[string]any)
	setValue(changes, "name", in.Name)
	setValue(changes, "description", in.Description)
	setSkills(changes, "required_skills", in.RequiredSkills)
	setDate(changes, "start_date", in.StartDate)
	setDate(changes, "end_date", in.EndDate)
	setValue(changes, "status", in.Status)
	setValue(changes, "sales_id", in.SalesID)
	return changes
}

func toProject(p models.Project) schemas.Project {
	return schemas.Project{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		RequiredSkills: skillsOrEmpty(p.RequiredSkills.Data()),
		StartDate:      fromModelDate(p.StartDate),
		EndDate:        fromModelDate(p.EndDate),
		Status:         p.Status,
		SalesID:        p.SalesID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
