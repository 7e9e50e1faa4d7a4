package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) WithTx(tx *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: tx}
}

func (r *LessonRepository) ListByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("sort_order ASC, created_at ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByID(ctx context.Context, id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.WithContext(ctx).First(&lesson, "id = ?", id).Error
	return &lesson, err
}

func (r *LessonRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.DB.WithContext(ctx).Create(lesson).Error
}
