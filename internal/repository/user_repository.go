package repository

import (
	"context"
	"educonexa_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{DB: tx}
}

// Create inserts the user together with an empty profile.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		profile := &model.Profile{UserID: user.ID}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindWithProfile(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List returns every user, newest first.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// UpdateRole returns gorm.ErrRecordNotFound when no user has the id.
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role model.UserRole) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdateName(ctx context.Context, id, name string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("name", name).Error
}

// ProfileChanges carries the profile columns to write; nil means untouched.
type ProfileChanges struct {
	Bio       *string
	AvatarURL *string
}

// UpsertProfile creates the profile row if missing and applies the changes.
func (r *UserRepository) UpsertProfile(ctx context.Context, userID string, ch ProfileChanges) (*model.Profile, error) {
	profile := &model.Profile{UserID: userID}
	columns := []string{"updated_at"}
	if ch.Bio != nil {
		profile.Bio = *ch.Bio
		columns = append(columns, "bio")
	}
	if ch.AvatarURL != nil {
		profile.AvatarURL = *ch.AvatarURL
		columns = append(columns, "avatar_url")
	}
	profile.UpdatedAt = time.Now()

	db := r.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(profile).Error
	if err != nil {
		return nil, err
	}

	var stored model.Profile
	if err := db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}
