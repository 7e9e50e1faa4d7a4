package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
)

type FollowService struct {
	FollowRepo *repository.FollowRepository
	UserRepo   *repository.UserRepository
}

func NewFollowService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *FollowService {
	return &FollowService{FollowRepo: followRepo, UserRepo: userRepo}
}

func (s *FollowService) userMustExist(ctx context.Context, id string) error {
	ok, err := s.UserRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrUserNotFound
	}
	return nil
}

func (s *FollowService) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return util.ErrSelfFollow
	}
	if err := s.userMustExist(ctx, targetID); err != nil {
		return err
	}
	return s.FollowRepo.Follow(ctx, followerID, targetID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID string) error {
	return s.FollowRepo.Unfollow(ctx, followerID, targetID)
}

func (s *FollowService) Followers(ctx context.Context, userID string) ([]model.UserSummary, error) {
	if err := s.userMustExist(ctx, userID); err != nil {
		return nil, err
	}
	follows, err := s.FollowRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserSummary, 0, len(follows))
	for _, f := range follows {
		if f.Follower != nil {
			out = append(out, f.Follower.Summary())
		}
	}
	return out, nil
}

func (s *FollowService) Following(ctx context.Context, userID string) ([]model.UserSummary, error) {
	if err := s.userMustExist(ctx, userID); err != nil {
		return nil, err
	}
	follows, err := s.FollowRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserSummary, 0, len(follows))
	for _, f := range follows {
		if f.Following != nil {
			out = append(out, f.Following.Summary())
		}
	}
	return out, nil
}
