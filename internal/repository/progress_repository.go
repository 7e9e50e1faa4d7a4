package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonProgressRepository struct {
	DB *gorm.DB
}

func NewLessonProgressRepository(db *gorm.DB) *LessonProgressRepository {
	return &LessonProgressRepository{DB: db}
}

func (r *LessonProgressRepository) WithTx(tx *gorm.DB) *LessonProgressRepository {
	return &LessonProgressRepository{DB: tx}
}

// MarkCompleted records the completion once. created is false when the
// lesson had already been completed.
func (r *LessonProgressRepository) MarkCompleted(ctx context.Context, userID, lessonID string) (created bool, err error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
			DoNothing: true,
		}).
		Create(&model.LessonProgress{UserID: userID, LessonID: lessonID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountCompletedInCourse counts the user's completed lessons that belong to the course.
func (r *LessonProgressRepository) CountCompletedInCourse(ctx context.Context, userID, courseID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lessons.course_id = ?", userID, courseID).
		Count(&count).Error
	return count, err
}
