package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"educonexa_backend/pkg/logger"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxUploadBytes  = 512 << 20
	thumbnailOffset = "00:00:01"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	CourseRepo   *repository.CourseRepository
	Storage      *StorageService

	// ffmpeg hooks, replaced in tests
	Inspect   func(path string) (*util.VideoMeta, error)
	Thumbnail func(videoPath, thumbPath, offset string) error
}

func NewResourceService(resourceRepo *repository.ResourceRepository, courseRepo *repository.CourseRepository, storage *StorageService) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		CourseRepo:   courseRepo,
		Storage:      storage,
		Inspect:      util.ReadVideoMeta,
		Thumbnail:    util.ExtractThumbnail,
	}
}

type CreateResourceRequest struct {
	CourseID    string             `json:"courseId" binding:"required"`
	Title       string             `json:"title" binding:"required,min=2,max=255"`
	Description string             `json:"description" binding:"omitempty,max=2000"`
	Type        model.ResourceType `json:"type" binding:"omitempty,oneof=VIDEO PDF LINK"`
	URL         string             `json:"url" binding:"required,url"`
}

type UploadResourceRequest struct {
	CourseID    string             `form:"courseId" json:"courseId" binding:"required"`
	Title       string             `form:"title" json:"title" binding:"required,min=2,max=255"`
	Description string             `form:"description" json:"description" binding:"omitempty,max=2000"`
	Type        model.ResourceType `form:"type" json:"type" binding:"omitempty,oneof=VIDEO PDF"`
}

func (s *ResourceService) List(ctx context.Context, courseID string) ([]model.Resource, error) {
	return s.ResourceRepo.List(ctx, courseID)
}

// CourseOwnerID returns the author of the course a new resource would join.
func (s *ResourceService) CourseOwnerID(ctx context.Context, courseID string) (string, error) {
	course, err := s.CourseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrCourseNotFound
		}
		return "", err
	}
	return course.AuthorID, nil
}

// OwnerID returns the author of the course the resource belongs to.
func (s *ResourceService) OwnerID(ctx context.Context, resourceID string) (string, error) {
	res, err := s.ResourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrResourceNotFound
		}
		return "", err
	}
	return s.CourseOwnerID(ctx, res.CourseID)
}

func (s *ResourceService) Create(ctx context.Context, req CreateResourceRequest) (*model.Resource, error) {
	typ := req.Type
	if typ == "" {
		typ = model.ResourceLink
	}
	res := &model.Resource{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Type:        typ,
		URL:         req.URL,
	}
	if err := s.ResourceRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Upload stores a PDF or video for a course. Videos are inspected for their
// duration and get a thumbnail when ffmpeg is available.
func (s *ResourceService) Upload(ctx context.Context, req UploadResourceRequest, file *multipart.FileHeader) (*model.Resource, error) {
	if file.Size > maxUploadBytes {
		return nil, fmt.Errorf("upload larger than %d bytes: %w", maxUploadBytes, util.ErrInvalidFile)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.SniffMimeType(src, []string{util.MimeVideo, util.MimePDF})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	typ := model.ResourcePDF
	if util.IsVideo(mimeType) {
		typ = model.ResourceVideo
	}
	if req.Type != "" && req.Type != typ {
		return nil, fmt.Errorf("declared type %s but file is %s: %w", req.Type, mimeType, util.ErrInvalidFile)
	}

	res := &model.Resource{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Type:        typ,
		Size:        file.Size,
	}

	if typ == model.ResourceVideo {
		err = s.storeVideo(ctx, res, src, file.Filename, mimeType)
	} else {
		res.StorageKey = ObjectKey("documents", file.Filename)
		res.URL, err = s.Storage.Upload(ctx, res.StorageKey, src, file.Size, mimeType)
	}
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	if err := s.ResourceRepo.Create(ctx, res); err != nil {
		s.removeObjects(ctx, res)
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) storeVideo(ctx context.Context, res *model.Resource, src io.Reader, filename, mimeType string) error {
	if err := os.MkdirAll(s.Storage.TempDir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Storage.TempDir, "video-*"+filepath.Ext(filename))
	if err != nil {
		return err
	}
	videoPath := tmp.Name()
	defer os.Remove(videoPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if meta, err := s.Inspect(videoPath); err != nil {
		logger.Log.Warn("video metadata read failed", zap.String("file", filename), zap.Error(err))
	} else {
		res.Duration = meta.DurationSeconds
	}

	res.StorageKey = ObjectKey("videos", filename)
	res.URL, err = s.Storage.UploadFile(ctx, res.StorageKey, videoPath, mimeType)
	if err != nil {
		return err
	}

	thumbPath := videoPath + ".jpg"
	defer os.Remove(thumbPath)
	if err := s.Thumbnail(videoPath, thumbPath, thumbnailOffset); err != nil {
		logger.Log.Warn("thumbnail generation failed", zap.String("file", filename), zap.Error(err))
		return nil
	}
	key := ObjectKey("thumbnails", "thumb.jpg")
	url, err := s.Storage.UploadFile(ctx, key, thumbPath, "image/jpeg")
	if err != nil {
		logger.Log.Warn("thumbnail upload failed", zap.Error(err))
		return nil
	}
	res.ThumbnailKey, res.ThumbnailURL = key, url
	return nil
}

func (s *ResourceService) removeObjects(ctx context.Context, res *model.Resource) {
	for _, key := range []string{res.StorageKey, res.ThumbnailKey} {
		if key == "" {
			continue
		}
		if err := s.Storage.Delete(ctx, key); err != nil {
			logger.Log.Warn("stored object not removed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	res, err := s.ResourceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrResourceNotFound
		}
		return err
	}
	if err := s.ResourceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeObjects(ctx, res)
	return nil
}
