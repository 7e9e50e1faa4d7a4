package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type CommunityService struct {
	PostRepo    *repository.PostRepository
	CommentRepo *repository.CommentRepository
	CourseRepo  *repository.CourseRepository
}

func NewCommunityService(
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	courseRepo *repository.CourseRepository,
) *CommunityService {
	return &CommunityService{
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
		CourseRepo:  courseRepo,
	}
}

type CreatePostRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	Content       string  `json:"content" binding:"required,min=1"`
	CourseID      *string `json:"courseId" binding:"omitempty,min=1"`
	MediaURL      string  `json:"mediaUrl" binding:"omitempty,url_or_data"`
	MediaType     string  `json:"mediaType" binding:"omitempty,max=50"`
	EventDate     *string `json:"eventDate" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EventLocation string  `json:"eventLocation" binding:"omitempty,max=255"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type ProfileSummary struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

type PostAuthor struct {
	model.UserSummary
	Profile *ProfileSummary `json:"profile"`
}

type CourseRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CommentView struct {
	ID        string            `json:"id"`
	PostID    string            `json:"postId"`
	Content   string            `json:"content"`
	Author    model.UserSummary `json:"author"`
	CreatedAt time.Time         `json:"createdAt"`
}

type PostView struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	AuthorID       string        `json:"authorId"`
	Author         *PostAuthor   `json:"author"`
	CourseID       *string       `json:"courseId"`
	Course         *CourseRef    `json:"course"`
	MediaURL       string        `json:"mediaUrl,omitempty"`
	MediaType      string        `json:"mediaType,omitempty"`
	EventDate      *time.Time    `json:"eventDate"`
	EventLocation  string        `json:"eventLocation,omitempty"`
	ShareCount     int           `json:"shareCount"`
	Comments       []CommentView `json:"comments"`
	LikeCount      int64         `json:"likeCount"`
	CommentCount   int64         `json:"commentCount"`
	LikedByCurrent bool          `json:"likedByCurrent"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type ShareResult struct {
	ID         string `json:"id"`
	ShareCount int    `json:"shareCount"`
}

func newCommentView(c *model.Comment) CommentView {
	v := CommentView{ID: c.ID, PostID: c.PostID, Content: c.Content, CreatedAt: c.CreatedAt}
	if c.Author != nil {
		v.Author = model.UserSummary{ID: c.Author.ID, Name: c.Author.Name}
	} else {
		v.Author = model.UserSummary{ID: c.AuthorID}
	}
	return v
}

func newPostView(p *model.Post) PostView {
	v := PostView{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		AuthorID:      p.AuthorID,
		CourseID:      p.CourseID,
		MediaURL:      p.MediaURL,
		MediaType:     p.MediaType,
		EventDate:     p.EventDate,
		EventLocation: p.EventLocation,
		ShareCount:    p.ShareCount,
		Comments:      make([]CommentView, 0, len(p.Comments)),
		CommentCount:  int64(len(p.Comments)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Author != nil {
		v.Author = &PostAuthor{UserSummary: p.Author.Summary()}
		if p.Author.Profile != nil {
			v.Author.Profile = &ProfileSummary{Bio: p.Author.Profile.Bio, AvatarURL: p.Author.Profile.AvatarURL}
		}
	}
	if p.Course != nil {
		v.Course = &CourseRef{ID: p.Course.ID, Title: p.Course.Title}
	}
	for i := range p.Comments {
		v.Comments = append(v.Comments, newCommentView(&p.Comments[i]))
	}
	return v
}

// ListPosts returns the feed as seen by viewerID, which may be empty.
func (s *CommunityService) ListPosts(ctx context.Context, viewerID, authorID string) ([]PostView, error) {
	posts, err := s.PostRepo.ListFeed(ctx, authorID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	likes, err := s.PostRepo.LikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.PostRepo.LikedBy(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		v := newPostView(&posts[i])
		v.LikeCount = likes[v.ID]
		v.LikedByCurrent = liked[v.ID]
		views = append(views, v)
	}
	return views, nil
}

// GetPost returns a single post in feed shape as seen by viewerID.
func (s *CommunityService) GetPost(ctx context.Context, viewerID, postID string) (*PostView, error) {
	post, err := s.PostRepo.FindFeedPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}
	ids := []string{post.ID}
	likes, err := s.PostRepo.LikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.PostRepo.LikedBy(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	v := newPostView(post)
	v.LikeCount = likes[post.ID]
	v.LikedByCurrent = liked[post.ID]
	return &v, nil
}

func parseEventDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, util.ErrInvalidEventDate
	}
	t = t.UTC()
	return &t, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*model.Post, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	var courseID *string
	if req.CourseID != nil && *req.CourseID != "" {
		ok, err := s.CourseRepo.Exists(ctx, *req.CourseID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, util.ErrCourseNotFound
		}
		courseID = req.CourseID
	}

	post := &model.Post{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		CourseID:  courseID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		EventDate: eventDate,
	}
	if eventDate != nil {
		post.EventLocation = req.EventLocation
		if post.EventLocation == "" {
			post.EventLocation = util.DefaultEventPlace
		}
	}
	if err := s.PostRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// PostOwnerID returns the author of the post.
func (s *CommunityService) PostOwnerID(ctx context.Context, postID string) (string, error) {
	post, err := s.PostRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrPostNotFound
		}
		return "", err
	}
	return post.AuthorID, nil
}

func (s *CommunityService) DeletePost(ctx context.Context, postID string) error {
	return s.PostRepo.Delete(ctx, postID)
}

func (s *CommunityService) postMustExist(ctx context.Context, postID string) error {
	ok, err := s.PostRepo.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrPostNotFound
	}
	return nil
}

func (s *CommunityService) Like(ctx context.Context, userID, postID string) error {
	if err := s.postMustExist(ctx, postID); err != nil {
		return err
	}
	return s.PostRepo.Like(ctx, userID, postID)
}

func (s *CommunityService) Unlike(ctx context.Context, userID, postID string) error {
	return s.PostRepo.Unlike(ctx, userID, postID)
}

func (s *CommunityService) Share(ctx context.Context, postID string) (*ShareResult, error) {
	n, err := s.PostRepo.IncrementShare(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}
	return &ShareResult{ID: postID, ShareCount: n}, nil
}

func (s *CommunityService) ListComments(ctx context.Context, postID string) ([]CommentView, error) {
	if err := s.postMustExist(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.CommentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, newCommentView(&comments[i]))
	}
	return views, nil
}

func (s *CommunityService) CreateComment(ctx context.Context, author *model.User, postID string, req CreateCommentRequest) (*CommentView, error) {
	if err := s.postMustExist(ctx, postID); err != nil {
		return nil, err
	}
	comment := &model.Comment{PostID: postID, AuthorID: author.ID, Content: req.Content}
	if err := s.CommentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author
	v := newCommentView(comment)
	return &v, nil
}

// CommentOwnerID returns the author of the comment.
func (s *CommunityService) CommentOwnerID(ctx context.Context, commentID string) (string, error) {
	comment, err := s.CommentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrCommentNotFound
		}
		return "", err
	}
	return comment.AuthorID, nil
}

func (s *CommunityService) DeleteComment(ctx context.Context, commentID string) error {
	return s.CommentRepo.Delete(ctx, commentID)
}
