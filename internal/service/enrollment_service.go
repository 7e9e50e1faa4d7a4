package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
)

type EnrollmentService struct {
	EnrollRepo *repository.EnrollmentRepository
	CourseRepo *repository.CourseRepository
	Cache      CourseCache
}

func NewEnrollmentService(enrollRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, cache CourseCache) *EnrollmentService {
	if cache == nil {
		cache = NoopCourseCache()
	}
	return &EnrollmentService{EnrollRepo: enrollRepo, CourseRepo: courseRepo, Cache: cache}
}

type EnrollRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	return s.EnrollRepo.ListByUser(ctx, userID)
}

// Enroll returns the enrollment and whether this call created it.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error) {
	ok, err := s.CourseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, util.ErrCourseNotFound
	}

	e, created, err := s.EnrollRepo.Enroll(ctx, userID, courseID)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.Cache.Invalidate(ctx)
	}
	return e, created, nil
}
