package service

import (
	"context"
	"testing"

	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	f := newFixture(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(f.db), f.courses, nil)
	ctx := context.Background()
	u := f.user(t, "enroll@example.com", model.RoleUser)
	c, _ := f.course(t, u.ID, 1)

	_, _, err := svc.Enroll(ctx, u.ID, "missing")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	e, created, err := svc.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, e.ID, again.ID)

	list, err := svc.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.CoursePublished, list[0].Course.Status)
}
