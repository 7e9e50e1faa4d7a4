package repository

import (
	"context"
	"educonexa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{DB: db}
}

// Follow creates the edge unless it exists.
func (r *FollowRepository) Follow(ctx context.Context, followerID, followingID string) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(&model.Follow{FollowerID: followerID, FollowingID: followingID}).Error
}

func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	return r.DB.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID string) ([]model.Follow, error) {
	var follows []model.Follow
	err := r.DB.WithContext(ctx).
		Preload("Follower", selectUserSummary).
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID string) ([]model.Follow, error) {
	var follows []model.Follow
	err := r.DB.WithContext(ctx).
		Preload("Following", selectUserSummary).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}
