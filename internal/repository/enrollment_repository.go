package repository

import (
	"context"
	"educonexa_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) WithTx(tx *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: tx}
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.WithContext(ctx).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "description", "status")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Find(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&e).Error
	return &e, err
}

// Enroll creates the enrollment unless it exists and returns the stored row.
func (r *EnrollmentRepository) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(&model.Enrollment{UserID: userID, CourseID: courseID})
	if res.Error != nil {
		return nil, false, res.Error
	}
	e, err := r.Find(ctx, userID, courseID)
	if err != nil {
		return nil, false, err
	}
	return e, res.RowsAffected > 0, nil
}

// SaveProgress writes progress and the access time, creating the enrollment
// on first use.
func (r *EnrollmentRepository) SaveProgress(ctx context.Context, userID, courseID string, progress int, at time.Time) (*model.Enrollment, error) {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"progress", "last_accessed", "updated_at"}),
		}).
		Create(&model.Enrollment{
			UserID:       userID,
			CourseID:     courseID,
			Progress:     progress,
			LastAccessed: &at,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.Find(ctx, userID, courseID)
}
