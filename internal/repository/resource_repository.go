package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// List returns resources newest first, optionally for a single course.
func (r *ResourceRepository) List(ctx context.Context, courseID string) ([]model.Resource, error) {
	var resources []model.Resource
	query := r.DB.WithContext(ctx).Preload("Course", selectCourseSummary)
	if courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	err := query.Order("created_at DESC").Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.WithContext(ctx).First(&resource, "id = ?", id).Error
	return &resource, err
}

func (r *ResourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(resource).Error
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&model.Resource{}, "id = ?", id).Error
}
