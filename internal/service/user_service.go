package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"gorm.io/gorm"
)

const (
	recentPostLimit = 10
	maxAvatarBytes  = 5 << 20
)

type UserService struct {
	UserRepo   *repository.UserRepository
	PostRepo   *repository.PostRepository
	FollowRepo *repository.FollowRepository
	Storage    *StorageService
	Cache      CourseCache
}

func NewUserService(
	userRepo *repository.UserRepository,
	postRepo *repository.PostRepository,
	followRepo *repository.FollowRepository,
	storage *StorageService,
	cache CourseCache,
) *UserService {
	if cache == nil {
		cache = NoopCourseCache()
	}
	return &UserService{
		UserRepo:   userRepo,
		PostRepo:   postRepo,
		FollowRepo: followRepo,
		Storage:    storage,
		Cache:      cache,
	}
}

type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,avatar_url"`
}

type ChangeRoleRequest struct {
	Role model.UserRole `json:"role" binding:"required,oneof=USER ADMIN"`
}

type RecentPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PublicProfile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           model.UserRole  `json:"role"`
	Profile        *ProfileSummary `json:"profile"`
	FollowersCount int64           `json:"followersCount"`
	FollowingCount int64           `json:"followingCount"`
	IsFollowing    bool            `json:"isFollowing"`
	IsSelf         bool            `json:"isSelf"`
	Posts          []RecentPost    `json:"posts"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ProfileResult struct {
	User    SessionUser    `json:"user"`
	Profile ProfileSummary `json:"profile"`
}

type AdminUserView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      model.UserRole `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (s *UserService) findUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.UserRepo.FindWithProfile(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// PublicProfile is what viewer sees on a user's page. viewer may be nil.
func (s *UserService) PublicProfile(ctx context.Context, viewer *model.User, id string) (*PublicProfile, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	followers, err := s.FollowRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &PublicProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		FollowersCount: followers,
		FollowingCount: following,
		CreatedAt:      user.CreatedAt,
	}
	if user.Profile != nil {
		out.Profile = &ProfileSummary{Bio: user.Profile.Bio, AvatarURL: user.Profile.AvatarURL}
	}
	if viewer != nil {
		out.IsSelf = viewer.ID == user.ID
		if !out.IsSelf {
			if out.IsFollowing, err = s.FollowRepo.IsFollowing(ctx, viewer.ID, user.ID); err != nil {
				return nil, err
			}
		}
	}

	posts, err := s.PostRepo.RecentByAuthor(ctx, id, recentPostLimit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	counts, err := s.PostRepo.CommentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	out.Posts = make([]RecentPost, 0, len(posts))
	for _, p := range posts {
		out.Posts = append(out.Posts, RecentPost{
			ID:           p.ID,
			Title:        p.Title,
			Content:      p.Content,
			CommentCount: counts[p.ID],
			CreatedAt:    p.CreatedAt,
		})
	}
	return out, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileResult, error) {
	if req.Name != nil {
		if err := s.UserRepo.UpdateName(ctx, userID, *req.Name); err != nil {
			return nil, err
		}
		// the course listing embeds owner names
		s.Cache.Invalidate(ctx)
	}
	profile, err := s.UserRepo.UpsertProfile(ctx, userID, repository.ProfileChanges{
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return nil, err
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileResult{
		User:    *NewSessionUser(user),
		Profile: ProfileSummary{Bio: profile.Bio, AvatarURL: profile.AvatarURL},
	}, nil
}

// UploadAvatar stores an image and makes it the user's avatar.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*ProfileResult, error) {
	if file.Size > maxAvatarBytes {
		return nil, fmt.Errorf("avatar larger than %d bytes: %w", maxAvatarBytes, util.ErrInvalidFile)
	}
	if !util.HasExtension(file.Filename, util.AllowedImageExtensions) {
		return nil, fmt.Errorf("unsupported avatar extension: %w", util.ErrInvalidFile)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.SniffMimeType(src, []string{util.MimeImage})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	url, err := s.Storage.Upload(ctx, ObjectKey("avatars", file.Filename), src, file.Size, mimeType)
	if err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}
	return s.UpdateProfile(ctx, userID, UpdateProfileRequest{AvatarURL: &url})
}

func (s *UserService) ListUsers(ctx context.Context) ([]AdminUserView, error) {
	users, err := s.UserRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminUserView, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt})
	}
	return out, nil
}

func (s *UserService) ChangeRole(ctx context.Context, id string, role model.UserRole) (*AdminUserView, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if err := s.UserRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AdminUserView{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, CreatedAt: user.CreatedAt}, nil
}
