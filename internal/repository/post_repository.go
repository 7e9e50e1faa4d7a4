package repository

import (
	"context"
	"educonexa_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) WithTx(tx *gorm.DB) *PostRepository {
	return &PostRepository{DB: tx}
}

func (r *PostRepository) feedQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Author", selectUserSummary).
		Preload("Author.Profile").
		Preload("Course", selectCourseSummary).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Author", selectUserSummary)
}

// ListFeed returns posts newest first with author profile, course summary
// and comments in chronological order. authorID narrows to one author.
func (r *PostRepository) ListFeed(ctx context.Context, authorID string) ([]model.Post, error) {
	var posts []model.Post
	query := r.feedQuery(ctx)
	if authorID != "" {
		query = query.Where("author_id = ?", authorID)
	}
	err := query.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindFeedPost loads one post with the same associations as ListFeed.
func (r *PostRepository) FindFeedPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.feedQuery(ctx).First(&post, "id = ?", id).Error
	return &post, err
}

// ListEvents returns posts whose event date falls in [from, to]; a nil to
// leaves the range open.
func (r *PostRepository) ListEvents(ctx context.Context, from time.Time, to *time.Time) ([]model.Post, error) {
	var posts []model.Post
	query := r.DB.WithContext(ctx).
		Preload("Author", selectUserSummary).
		Where("event_date IS NOT NULL AND event_date >= ?", from)
	if to != nil {
		query = query.Where("event_date <= ?", *to)
	}
	err := query.Order("event_date ASC").Find(&posts).Error
	return posts, err
}

func (r *PostRepository) RecentByAuthor(ctx context.Context, authorID string, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	return &post, err
}

func (r *PostRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, "id = ?", id).Error
	})
}

// IncrementShare bumps the counter in the database and returns the new value.
func (r *PostRepository) IncrementShare(ctx context.Context, id string) (int, error) {
	var shareCount int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).
			Where("id = ?", id).
			UpdateColumn("share_count", gorm.Expr("share_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Post{}).Where("id = ?", id).Select("share_count").Scan(&shareCount).Error
	})
	return shareCount, err
}

// Like is idempotent.
func (r *PostRepository) Like(ctx context.Context, userID, postID string) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&model.PostLike{UserID: userID, PostID: postID}).Error
}

// Unlike removes the like if present.
func (r *PostRepository) Unlike(ctx context.Context, userID, postID string) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostLike{}).Error
}

type postCount struct {
	PostID string
	Total  int64
}

func (r *PostRepository) LikeCounts(ctx context.Context, postIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []postCount
	err := r.DB.WithContext(ctx).Model(&model.PostLike{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.Total
	}
	return out, nil
}

func (r *PostRepository) CommentCounts(ctx context.Context, postIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []postCount
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.Total
	}
	return out, nil
}

// LikedBy returns the subset of postIDs the user has liked.
func (r *PostRepository) LikedBy(ctx context.Context, userID string, postIDs []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if userID == "" || len(postIDs) == 0 {
		return out, nil
	}
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.PostLike{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
