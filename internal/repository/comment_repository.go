package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.WithContext(ctx).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	return &comment, err
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id).Error
}
