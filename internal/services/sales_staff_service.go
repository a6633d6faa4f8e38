package services

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/models"
	"github.com/sirdesai22/staffing-service/internal/schemas"
)

const salesStaffEntity = "sales_staff"

type SalesStaffFilter struct {
	Email string
}

func GetSalesStaff(ctx context.Context, db *gorm.DB, id int64) (out schemas.SalesStaff, err error) {
	defer func() { observe(salesStaffEntity, "get", err) }()

	var s models.SalesStaff
	if err = db.WithContext(ctx).First(&s, id).Error; err != nil {
		return schemas.SalesStaff{}, wrap("get sales staff", err)
	}
	return toSalesStaff(s), nil
}

func ListSalesStaff(ctx context.Context, db *gorm.DB, page Page, filter SalesStaffFilter) (out []schemas.SalesStaff, err error) {
	defer func() { observe(salesStaffEntity, "list", err) }()

	page = page.normalize()
	q := db.WithContext(ctx).Model(&models.SalesStaff{})
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}
	var rows []models.SalesStaff
	if err = q.Order("id").Offset(page.Skip).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, wrap("list sales staff", err)
	}
	return slice.Map(rows, func(idx int, src models.SalesStaff) schemas.SalesStaff {
		return toSalesStaff(src)
	}), nil
}

func CreateSalesStaff(ctx context.Context, db *gorm.DB, in schemas.SalesStaffCreate) (out schemas.SalesStaff, err error) {
	defer func() { observe(salesStaffEntity, "create", err) }()

	s := models.SalesStaff{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if err = db.WithContext(ctx).Create(&s).Error; err != nil {
		return schemas.SalesStaff{}, wrap("create sales staff", err)
	}
	return toSalesStaff(s), nil
}

func UpdateSalesStaff(ctx context.Context, db *gorm.DB, id int64, in schemas.SalesStaffUpdate) (out schemas.SalesStaff, err error) {
	defer func() { observe(salesStaffEntity, "update", err) }()

	var s models.SalesStaff
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		changes := make(map[string]any)
		setValue(changes, "name", in.Name)
		setValue(changes, "email", in.Email)
		setValue(changes, "phone", in.Phone)
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&s).Updates(changes).Error; err != nil {
			return err
		}
		s = models.SalesStaff{}
		return tx.First(&s, id).Error
	})
	if err != nil {
		return schemas.SalesStaff{}, wrap("update sales staff", err)
	}
	return toSalesStaff(s), nil
}

// DeleteSalesStaff detaches the staff member's projects (sales_id = NULL) and
// removes the row in one transaction. Projects are never deleted.
func DeleteSalesStaff(ctx context.Context, db *gorm.DB, id int64) (deleted bool, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).Where("sales_id = ?", id).Update("sales_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.SalesStaff{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		err = wrap("delete sales staff", err)
		observe(salesStaffEntity, "delete", err)
		return false, err
	}
	if !deleted {
		observe(salesStaffEntity, "delete", ErrNotFound)
		return false, nil
	}
	observe(salesStaffEntity, "delete", nil)
	return true, nil
}

func toSalesStaff(s models.SalesStaff) schemas.SalesStaff {
	return schemas.SalesStaff{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
