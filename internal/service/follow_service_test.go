package service

import (
	"context"
	"testing"

	"educonexa_backend/internal/model"
	"educonexa_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRules(t *testing.T) {
	f := newFixture(t)
	svc := NewFollowService(f.follows, f.users)
	ctx := context.Background()
	a := f.user(t, "a@example.com", model.RoleUser)
	b := f.user(t, "b@example.com", model.RoleUser)

	assert.ErrorIs(t, svc.Follow(ctx, a.ID, a.ID), util.ErrSelfFollow)
	assert.ErrorIs(t, svc.Follow(ctx, a.ID, "ghost"), util.ErrUserNotFound)

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))

	followers, err := svc.Followers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].ID)

	following, err := svc.Following(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].ID)

	require.NoError(t, svc.Unfollow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Unfollow(ctx, a.ID, b.ID))
	followers, err = svc.Followers(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
