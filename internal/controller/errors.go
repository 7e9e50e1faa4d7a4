package controller

import (
	"educonexa_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Anything unknown is
// logged and reported as a plain 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case util.IsNotFound(err):
		util.NotFoundMessage(ctx, notFoundMessage(err))
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(ctx, util.ErrEmailRegistered.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Error())
	case errors.Is(err, util.ErrSelfFollow):
		util.BadRequest(ctx, util.ErrSelfFollow.Error())
	case errors.Is(err, util.ErrInvalidEventDate):
		util.ValidationFailed(ctx, map[string]string{"eventDate": "must be an ISO 8601 date-time"})
	case errors.Is(err, util.ErrInvalidFile):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{
		util.ErrUserNotFound,
		util.ErrCourseNotFound,
		util.ErrLessonNotFound,
		util.ErrPostNotFound,
		util.ErrCommentNotFound,
		util.ErrResourceNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return util.ErrNotFound.Error()
}
