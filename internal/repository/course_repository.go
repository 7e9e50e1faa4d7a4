package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) WithTx(tx *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: tx}
}

func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func selectCourseSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title")
}

// List returns all courses with their authors, newest first.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.WithContext(ctx).
		Preload("Author", selectUserSummary).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.WithContext(ctx).First(&course, "id = ?", id).Error
	return &course, err
}

// FindDetail loads the author, lessons in display order, and resources.
func (r *CourseRepository) FindDetail(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.WithContext(ctx).
		Preload("Author", selectUserSummary).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at ASC")
		}).
		Preload("Resources", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Course{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) Update(ctx context.Context, id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&model.Course{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes the course and everything hanging off it. Posts that
// referenced the course keep existing without it.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("course_id = ?", id)
		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.LessonProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Certification{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Post{}).Where("course_id = ?", id).Update("course_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, "id = ?", id).Error
	})
}

type courseCount struct {
	CourseID string
	Total    int64
}

// countsByCourse returns per-course row counts of the given child table.
func (r *CourseRepository) countsByCourse(ctx context.Context, m interface{}, ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []courseCount
	err := r.DB.WithContext(ctx).Model(m).
		Select("course_id, COUNT(*) AS total").
		Where("course_id IN ?", ids).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.CourseID] = row.Total
	}
	return out, nil
}

func (r *CourseRepository) LessonCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	return r.countsByCourse(ctx, &model.Lesson{}, ids)
}

func (r *CourseRepository) EnrollmentCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	return r.countsByCourse(ctx, &model.Enrollment{}, ids)
}
