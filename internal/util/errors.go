package util

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrInvalidFile        = errors.New("invalid file")
	ErrInvalidEventDate   = errors.New("invalid event date")
)

var notFoundErrors = []error{
	ErrNotFound,
	ErrUserNotFound,
	ErrCourseNotFound,
	ErrLessonNotFound,
	ErrPostNotFound,
	ErrCommentNotFound,
	ErrResourceNotFound,
}

// IsNotFound reports whether err names a missing entity.
func IsNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
