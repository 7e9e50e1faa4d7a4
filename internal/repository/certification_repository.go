package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificationRepository struct {
	DB *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{DB: db}
}

func (r *CertificationRepository) WithTx(tx *gorm.DB) *CertificationRepository {
	return &CertificationRepository{DB: tx}
}

// Ensure inserts cert unless the (user, course) pair already has one. The
// stored row is returned either way and an existing row is never modified.
func (r *CertificationRepository) Ensure(ctx context.Context, cert *model.Certification) (*model.Certification, bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(cert)
	if res.Error != nil {
		return nil, false, res.Error
	}

	var stored model.Certification
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", cert.UserID, cert.CourseID).
		First(&stored).Error
	if err != nil {
		return nil, false, err
	}
	return &stored, res.RowsAffected > 0, nil
}

func (r *CertificationRepository) ListByUser(ctx context.Context, userID string) ([]model.Certification, error) {
	var certs []model.Certification
	err := r.DB.WithContext(ctx).
		Preload("Course", selectCourseSummary).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&certs).Error
	return certs, err
}
