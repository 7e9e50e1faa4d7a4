package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	CourseRepo *repository.CourseRepository
	Cache      CourseCache
}

func NewLessonService(lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository, cache CourseCache) *LessonService {
	if cache == nil {
		cache = NoopCourseCache()
	}
	return &LessonService{LessonRepo: lessonRepo, CourseRepo: courseRepo, Cache: cache}
}

type CreateLessonRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"omitempty,min=3"`
	Content     string `json:"content"`
	VideoURL    string `json:"videoUrl" binding:"omitempty,url"`
	Order       *int   `json:"order" binding:"omitempty,gt=0"`
}

func (s *LessonService) List(ctx context.Context, courseID string) ([]model.Lesson, error) {
	ok, err := s.CourseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return s.LessonRepo.ListByCourse(ctx, courseID)
}

// Create appends a lesson. Without an explicit order it goes after the
// current lesson count.
func (s *LessonService) Create(ctx context.Context, courseID string, req CreateLessonRequest) (*model.Lesson, error) {
	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		count, err := s.LessonRepo.CountByCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}
		order = int(count) + 1
	}

	lesson := &model.Lesson{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		Order:       order,
	}
	if err := s.LessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return lesson, nil
}
