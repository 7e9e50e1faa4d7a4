package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"educonexa_backend/pkg/monitoring"
	"educonexa_backend/pkg/tracing"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

type ProgressService struct {
	DB           *gorm.DB
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.LessonProgressRepository
	EnrollRepo   *repository.EnrollmentRepository
	Certs        *CertificationService
	Cache        CourseCache
}

func NewProgressService(
	db *gorm.DB,
	lessonRepo *repository.LessonRepository,
	progressRepo *repository.LessonProgressRepository,
	enrollRepo *repository.EnrollmentRepository,
	certs *CertificationService,
	cache CourseCache,
) *ProgressService {
	if cache == nil {
		cache = NoopCourseCache()
	}
	return &ProgressService{
		DB:           db,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
		EnrollRepo:   enrollRepo,
		Certs:        certs,
		Cache:        cache,
	}
}

type CompletionResult struct {
	Progress      int                  `json:"progress"`
	Certification *model.Certification `json:"certification"`
}

// ProgressPercent is round(100*completed/total) with halves rounded up,
// computed on integers. An empty course has no progress.
func ProgressPercent(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int((200*completed + total) / (2 * total))
}

// CompleteLesson records the completion, recomputes the course progress and
// issues the certificate once progress reaches 100.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID, lessonID string) (result *CompletionResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "ProgressService.CompleteLesson",
		attribute.String("user.id", userID),
		attribute.String("lesson.id", lessonID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	lesson, err := s.LessonRepo.FindByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	var certCreated bool
	result = &CompletionResult{}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.ProgressRepo.WithTx(tx).MarkCompleted(ctx, userID, lessonID); err != nil {
			return err
		}

		total, err := s.LessonRepo.WithTx(tx).CountByCourse(ctx, lesson.CourseID)
		if err != nil {
			return err
		}
		completed, err := s.ProgressRepo.WithTx(tx).CountCompletedInCourse(ctx, userID, lesson.CourseID)
		if err != nil {
			return err
		}
		result.Progress = ProgressPercent(completed, total)

		if _, err := s.EnrollRepo.WithTx(tx).SaveProgress(ctx, userID, lesson.CourseID, result.Progress, s.Certs.Now().UTC()); err != nil {
			return err
		}

		if result.Progress >= 100 {
			cert, created, err := s.Certs.ensure(ctx, s.Certs.CertRepo.WithTx(tx), userID, lesson.CourseID, "")
			if err != nil {
				return err
			}
			result.Certification = cert
			certCreated = created
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.LessonsCompleted.Inc()
	if certCreated {
		monitoring.CertificatesIssued.WithLabelValues(CertSourceProgress).Inc()
	}
	span.SetAttributes(attribute.Int("progress", result.Progress))
	s.Cache.Invalidate(ctx)
	return result, nil
}
