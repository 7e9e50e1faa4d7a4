package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Cache      CourseCache
}

func NewCourseService(courseRepo *repository.CourseRepository, cache CourseCache) *CourseService {
	if cache == nil {
		cache = NoopCourseCache()
	}
	return &CourseService{CourseRepo: courseRepo, Cache: cache}
}

type CreateCourseRequest struct {
	Title       string             `json:"title" binding:"required,min=3"`
	Description string             `json:"description" binding:"required,min=10"`
	Status      model.CourseStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type UpdateCourseRequest struct {
	Title       *string             `json:"title" binding:"omitempty,min=3"`
	Description *string             `json:"description" binding:"omitempty,min=10"`
	Status      *model.CourseStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type CourseListItem struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Status          model.CourseStatus `json:"status"`
	AuthorID        string             `json:"authorId"`
	Author          *model.UserSummary `json:"author"`
	LessonCount     int64              `json:"lessonCount"`
	EnrollmentCount int64              `json:"enrollmentCount"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type CourseDetail struct {
	CourseListItem
	Lessons   []model.Lesson   `json:"lessons"`
	Resources []model.Resource `json:"resources"`
}

func listItem(c *model.Course, lessons, enrollments int64) CourseListItem {
	item := CourseListItem{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Status:          c.Status,
		AuthorID:        c.AuthorID,
		LessonCount:     lessons,
		EnrollmentCount: enrollments,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.Author != nil {
		s := c.Author.Summary()
		item.Author = &s
	}
	return item
}

func (s *CourseService) List(ctx context.Context) ([]CourseListItem, error) {
	if items, ok := s.Cache.Get(ctx); ok {
		return items, nil
	}

	courses, err := s.CourseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(courses))
	for i := range courses {
		ids[i] = courses[i].ID
	}
	lessons, err := s.CourseRepo.LessonCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.CourseRepo.EnrollmentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]CourseListItem, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		items = append(items, listItem(c, lessons[c.ID], enrollments[c.ID]))
	}
	s.Cache.Set(ctx, items)
	return items, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	enrollments, err := s.CourseRepo.EnrollmentCounts(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{
		CourseListItem: listItem(course, int64(len(course.Lessons)), enrollments[id]),
		Lessons:        course.Lessons,
		Resources:      course.Resources,
	}
	if detail.Lessons == nil {
		detail.Lessons = []model.Lesson{}
	}
	if detail.Resources == nil {
		detail.Resources = []model.Resource{}
	}
	return detail, nil
}

// OwnerID returns the author of the course.
func (s *CourseService) OwnerID(ctx context.Context, id string) (string, error) {
	course, err := s.CourseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrCourseNotFound
		}
		return "", err
	}
	return course.AuthorID, nil
}

func (s *CourseService) Create(ctx context.Context, authorID string, req CreateCourseRequest) (*model.Course, error) {
	status := req.Status
	if status == "" {
		status = model.CourseDraft
	}
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		AuthorID:    authorID,
	}
	if err := s.CourseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id string, req UpdateCourseRequest) (*model.Course, error) {
	changes := map[string]interface{}{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if err := s.CourseRepo.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.CourseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}
