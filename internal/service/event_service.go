package service

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"strings"
	"time"
)

// Events are posts that carry an event date.
type EventService struct {
	PostRepo *repository.PostRepository
	Now      func() time.Time
}

func NewEventService(postRepo *repository.PostRepository) *EventService {
	return &EventService{PostRepo: postRepo, Now: time.Now}
}

type CreateEventRequest struct {
	Title         string `json:"title" binding:"required,min=1,max=255"`
	Description   string `json:"description" binding:"required,min=1"`
	EventDate     string `json:"eventDate" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EventLocation string `json:"eventLocation" binding:"omitempty,max=255"`
	MediaURL      string `json:"mediaUrl" binding:"omitempty,url_or_data"`
	MediaType     string `json:"mediaType" binding:"omitempty,max=50"`
}

type EventView struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	EventDate     time.Time         `json:"eventDate"`
	EventLocation string            `json:"eventLocation"`
	MediaURL      string            `json:"mediaUrl,omitempty"`
	MediaType     string            `json:"mediaType,omitempty"`
	Author        model.UserSummary `json:"author"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func newEventView(p *model.Post) EventView {
	v := EventView{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Content,
		EventLocation: p.EventLocation,
		MediaURL:      p.MediaURL,
		MediaType:     p.MediaType,
		CreatedAt:     p.CreatedAt,
	}
	if p.EventDate != nil {
		v.EventDate = *p.EventDate
	}
	if p.Author != nil {
		v.Author = p.Author.Summary()
	} else {
		v.Author = model.UserSummary{ID: p.AuthorID}
	}
	return v
}

// parseBound reads an RFC 3339 instant; blank or malformed input gives nil.
func parseBound(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// List returns events inside [from, to]. from defaults to now; to is open
// when absent.
func (s *EventService) List(ctx context.Context, fromRaw, toRaw string) ([]EventView, error) {
	from := s.Now().UTC()
	if f := parseBound(fromRaw); f != nil {
		from = *f
	}
	posts, err := s.PostRepo.ListEvents(ctx, from, parseBound(toRaw))
	if err != nil {
		return nil, err
	}
	views := make([]EventView, 0, len(posts))
	for i := range posts {
		views = append(views, newEventView(&posts[i]))
	}
	return views, nil
}

func (s *EventService) Create(ctx context.Context, author *model.User, req CreateEventRequest) (*EventView, error) {
	at, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, util.ErrInvalidEventDate
	}
	at = at.UTC()

	location := strings.TrimSpace(req.EventLocation)
	if location == "" {
		location = util.DefaultEventPlace
	}
	post := &model.Post{
		Title:         req.Title,
		Content:       req.Description,
		AuthorID:      author.ID,
		MediaURL:      req.MediaURL,
		MediaType:     req.MediaType,
		EventDate:     &at,
		EventLocation: location,
	}
	if err := s.PostRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Author = author
	v := newEventView(post)
	return &v, nil
}
