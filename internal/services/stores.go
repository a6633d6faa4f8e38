package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/schemas"
)

// EngineerStore binds the engineer operations to one database handle.
type EngineerStore struct {
	db *gorm.DB
}

func NewEngineerStore(db *gorm.DB) *EngineerStore { return &EngineerStore{db: db} }

func (s *EngineerStore) Get(ctx context.Context, id int64) (schemas.Engineer, error) {
	return GetEngineer(ctx, s.db, id)
}

func (s *EngineerStore) List(ctx context.Context, page Page, filter EngineerFilter) ([]schemas.Engineer, error) {
	return ListEngineers(ctx, s.db, page, filter)
}

func (s *EngineerStore) Create(ctx context.Context, in schemas.EngineerCreate) (schemas.Engineer, error) {
	return CreateEngineer(ctx, s.db, in)
}

func (s *EngineerStore) Update(ctx context.Context, id int64, in schemas.EngineerUpdate) (schemas.Engineer, error) {
	return UpdateEngineer(ctx, s.db, id, in)
}

func (s *EngineerStore) Delete(ctx context.Context, id int64) (bool, error) {
	return DeleteEngineer(ctx, s.db, id)
}

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore { return &ProjectStore{db: db} }

func (s *ProjectStore) Get(ctx context.Context, id int64) (schemas.Project, error) {
	return GetProject(ctx, s.db, id)
}

func (s *ProjectStore) List(ctx context.Context, page Page, filter ProjectFilter) ([]schemas.Project, error) {
	return ListProjects(ctx, s.db, page, filter)
}

func (s *ProjectStore) Create(ctx context.Context, in schemas.ProjectCreate) (schemas.Project, error) {
	return CreateProject(ctx, s.db, in)
}

func (s *ProjectStore) Update(ctx context.Context, id int64, in schemas.ProjectUpdate) (schemas.Project, error) {
	return UpdateProject(ctx, s.db, id, in)
}

func (s *ProjectStore) Delete(ctx context.Context, id int64) (bool, error) {
	return DeleteProject(ctx, s.db, id)
}

type SalesStaffStore struct {
	db *gorm.DB
}

func NewSalesStaffStore(db *gorm.DB) *SalesStaffStore { return &SalesStaffStore{db: db} }

func (s *SalesStaffStore) Get(ctx context.Context, id int64) (schemas.SalesStaff, error) {
	return GetSalesStaff(ctx, s.db, id)
}

func (s *SalesStaffStore) List(ctx context.Context, page Page, filter SalesStaffFilter) ([]schemas.SalesStaff, error) {
	return ListSalesStaff(ctx, s.db, page, filter)
}

func (s *SalesStaffStore) Create(ctx context.Context, in schemas.SalesStaffCreate) (schemas.SalesStaff, error) {
	return CreateSalesStaff(ctx, s.db, in)
}

func (s *SalesStaffStore) Update(ctx context.Context, id int64, in schemas.SalesStaffUpdate) (schemas.SalesStaff, error) {
	return UpdateSalesStaff(ctx, s.db, id, in)
}

// Delete detaches the staff member's projects before removing the row.
func (s *SalesStaffStore) Delete(ctx context.Context, id int64) (bool, error) {
	return DeleteSalesStaff(ctx, s.db, id)
}
