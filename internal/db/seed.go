package db

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/models"
)

// Seed inserts the demo data set unless sales staff rows already exist.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.SalesStaff{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("data already exists, skipping seed", zap.Int64("sales_staff", count))
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		staff := []models.SalesStaff{
			{Name: "山田太郎", Email: "yamada@example.com", Phone: ptr("090-1111-2222")},
			{Name: "佐藤花子", Email: "sato@example.com", Phone: ptr("090-3333-4444")},
		}
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}

		engineers := []models.Engineer{
			{
				Name:  "鈴木一郎",
				Email: "suzuki@example.com",
				Phone: ptr("090-5555-6666"),
				Skills: datatypes.NewJSONType(models.Skills{
					"languages":  {"Python", "JavaScript", "Java"},
					"frameworks": {"FastAPI", "React", "Spring Boot"},
					"databases":  {"PostgreSQL", "MongoDB"},
				}),
				Status:        "稼働可能",
				AvailableDate: date(2025, time.January, 15),
			},
			{
				Name:  "田中二郎",
				Email: "tanaka@example.com",
				Phone: ptr("090-7777-8888"),
				Skills: datatypes.NewJSONType(models.Skills{
					"languages":  {"PHP", "Python", "TypeScript"},
					"frameworks": {"Laravel", "Django", "Vue.js"},
					"databases":  {"MySQL", "Redis"},
				}),
				Status:        "案件中",
				AvailableDate: date(2025, time.March, 1),
			},
		}
		if err := tx.Create(&engineers).Error; err != nil {
			return err
		}

		// projects need the generated sales staff ids
		projects := []models.Project{
			{
				Name:        "ECサイトリニューアル",
				Description: ptr("既存ECサイトのフルリニューアルプロジェクト"),
				RequiredSkills: datatypes.NewJSONType(models.Skills{
					"languages":  {"Python", "JavaScript"},
					"frameworks": {"FastAPI", "React"},
					"databases":  {"PostgreSQL"},
				}),
				StartDate: date(2025, time.February, 1),
				EndDate:   date(2025, time.July, 31),
				Status:    "準備中",
				SalesID:   &staff[0].ID,
			},
			{
				Name:        "社内システム刷新",
				Description: ptr("レガシーシステムの最新化プロジェクト"),
				RequiredSkills: datatypes.NewJSONType(models.Skills{
					"languages":  {"Java", "TypeScript"},
					"frameworks": {"Spring Boot", "Angular"},
					"databases":  {"Oracle"},
				}),
				StartDate: date(2025, time.March, 1),
				EndDate:   date(2025, time.August, 31),
				Status:    "準備中",
				SalesID:   &staff[1].ID,
			},
		}
		return tx.Create(&projects).Error
	})
	if err != nil {
		return err
	}

	log.Info("sample data inserted")
	return nil
}

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *datatypes.Date {
	v := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}
