package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"educonexa_backend/pkg/monitoring"
	"time"
)

// Certificate sources, used as the metric label.
const (
	CertSourceProgress = "progress"
	CertSourceSelf     = "self"
	CertSourceAdmin    = "admin"
)

type CertificationService struct {
	CertRepo   *repository.CertificationRepository
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
	Now        func() time.Time
}

func NewCertificationService(certRepo *repository.CertificationRepository, courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *CertificationService {
	return &CertificationService{
		CertRepo:   certRepo,
		CourseRepo: courseRepo,
		UserRepo:   userRepo,
		Now:        time.Now,
	}
}

type GrantCertificationRequest struct {
	UserID          string `json:"userId" binding:"required"`
	CourseID        string `json:"courseId" binding:"required"`
	CertificateCode string `json:"certificateCode" binding:"omitempty,max=64"`
}

type SelfCertifyRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// ensure issues the certificate through repo unless one exists. code is
// only used when the row is created.
func (s *CertificationService) ensure(ctx context.Context, repo *repository.CertificationRepository, userID, courseID, code string) (*model.Certification, bool, error) {
	now := s.Now()
	if code == "" {
		code = util.NewCertificateCode(now)
	}
	return repo.Ensure(ctx, &model.Certification{
		UserID:          userID,
		CourseID:        courseID,
		CertificateCode: code,
		IssuedAt:        now.UTC(),
	})
}

func (s *CertificationService) courseMustExist(ctx context.Context, courseID string) error {
	ok, err := s.CourseRepo.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrCourseNotFound
	}
	return nil
}

// SelfCertify lets a user claim the certificate for a course directly.
func (s *CertificationService) SelfCertify(ctx context.Context, userID, courseID string) (*model.Certification, bool, error) {
	if err := s.courseMustExist(ctx, courseID); err != nil {
		return nil, false, err
	}
	cert, created, err := s.ensure(ctx, s.CertRepo, userID, courseID, "")
	if err != nil {
		return nil, false, err
	}
	if created {
		monitoring.CertificatesIssued.WithLabelValues(CertSourceSelf).Inc()
	}
	return cert, created, nil
}

// Grant issues a certificate on behalf of an administrator.
func (s *CertificationService) Grant(ctx context.Context, admin *model.User, req GrantCertificationRequest) (*model.Certification, bool, error) {
	if !admin.IsAdmin() {
		return nil, false, util.ErrPermissionDenied
	}
	ok, err := s.UserRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, util.ErrUserNotFound
	}
	if err := s.courseMustExist(ctx, req.CourseID); err != nil {
		return nil, false, err
	}

	cert, created, err := s.ensure(ctx, s.CertRepo, req.UserID, req.CourseID, req.CertificateCode)
	if err != nil {
		return nil, false, err
	}
	if created {
		monitoring.CertificatesIssued.WithLabelValues(CertSourceAdmin).Inc()
	}
	return cert, created, nil
}

func (s *CertificationService) ListForUser(ctx context.Context, userID string) ([]model.Certification, error) {
	return s.CertRepo.ListByUser(ctx, userID)
}
