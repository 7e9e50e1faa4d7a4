package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"educonexa_backend/internal/config"
	"educonexa_backend/internal/model"
	"educonexa_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:  database.DriverSQLite,
		DSN:     fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogMode: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Name: "User " + email, Email: email, PasswordHash: "x", Role: model.RoleUser}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedCourse(t *testing.T, db *gorm.DB, authorID string, lessons int) (*model.Course, []model.Lesson) {
	t.Helper()
	ctx := context.Background()
	c := &model.Course{Title: "Course", Description: "A course for tests", Status: model.CourseDraft, AuthorID: authorID}
	require.NoError(t, NewCourseRepository(db).Create(ctx, c))
	var out []model.Lesson
	for i := 1; i <= lessons; i++ {
		l := model.Lesson{CourseID: c.ID, Title: fmt.Sprintf("Lesson %d", i), Order: i}
		require.NoError(t, NewLessonRepository(db).Create(ctx, &l))
		out = append(out, l)
	}
	return c, out
}

func TestUserCreateAddsEmptyProfile(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "a@example.com")

	got, err := NewUserRepository(db).FindWithProfile(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "", got.Profile.Bio)
}

func TestUpsertProfileOnlyTouchesGivenFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	u := seedUser(t, db, "p@example.com")
	ctx := context.Background()

	bio := "hello"
	p, err := repo.UpsertProfile(ctx, u.ID, ProfileChanges{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Bio)

	avatar := "https://cdn.example.com/a.png"
	p, err = repo.UpsertProfile(ctx, u.ID, ProfileChanges{AvatarURL: &avatar})
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Bio)
	assert.Equal(t, avatar, p.AvatarURL)

	var count int64
	db.Model(&model.Profile{}).Where("user_id = ?", u.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	db := newTestDB(t)
	err := NewUserRepository(db).UpdateRole(context.Background(), "missing", model.RoleAdmin)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLessonCompletionIsRecordedOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "l@example.com")
	c, lessons := seedCourse(t, db, u.ID, 3)
	repo := NewLessonProgressRepository(db)

	created, err := repo.MarkCompleted(ctx, u.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.MarkCompleted(ctx, u.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := repo.CountCompletedInCourse(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestEnrollAndSaveProgress(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "e@example.com")
	c, _ := seedCourse(t, db, u.ID, 1)
	repo := NewEnrollmentRepository(db)

	e, created, err := repo.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0, e.Progress)

	_, created, err = repo.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, created)

	now := time.Now()
	e2, err := repo.SaveProgress(ctx, u.ID, c.ID, 50, now)
	require.NoError(t, err)
	assert.Equal(t, e.ID, e2.ID)
	assert.Equal(t, 50, e2.Progress)
	require.NotNil(t, e2.LastAccessed)

	list, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Course)
	assert.Equal(t, "Course", list[0].Course.Title)
}

func TestCertificationEnsureKeepsFirstCode(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "c@example.com")
	c, _ := seedCourse(t, db, u.ID, 0)
	repo := NewCertificationRepository(db)

	first, created, err := repo.Ensure(ctx, &model.Certification{UserID: u.ID, CourseID: c.ID, CertificateCode: "K", IssuedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.Ensure(ctx, &model.Certification{UserID: u.ID, CourseID: c.ID, CertificateCode: "OTHER", IssuedAt: time.Now()})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "K", second.CertificateCode)
}

func TestCourseDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "d@example.com")
	c, lessons := seedCourse(t, db, u.ID, 2)

	_, err := NewLessonProgressRepository(db).MarkCompleted(ctx, u.ID, lessons[0].ID)
	require.NoError(t, err)
	_, _, err = NewEnrollmentRepository(db).Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	_, _, err = NewCertificationRepository(db).Ensure(ctx, &model.Certification{UserID: u.ID, CourseID: c.ID, CertificateCode: "K", IssuedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, NewResourceRepository(db).Create(ctx, &model.Resource{CourseID: c.ID, Title: "Doc", Type: model.ResourceLink, URL: "https://x.example"}))
	post := &model.Post{Title: "t", Content: "c", AuthorID: u.ID, CourseID: &c.ID}
	require.NoError(t, NewPostRepository(db).Create(ctx, post))

	require.NoError(t, NewCourseRepository(db).Delete(ctx, c.ID))

	for _, m := range []interface{}{&model.Course{}, &model.Lesson{}, &model.LessonProgress{}, &model.Enrollment{}, &model.Certification{}, &model.Resource{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T rows left", m)
	}
	kept, err := NewPostRepository(db).FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.CourseID)
}

func TestCourseCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "n@example.com")
	c, _ := seedCourse(t, db, u.ID, 3)
	_, _, err := NewEnrollmentRepository(db).Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	repo := NewCourseRepository(db)
	lessons, err := repo.LessonCounts(ctx, []string{c.ID})
	require.NoError(t, err)
	enrollments, err := repo.EnrollmentCounts(ctx, []string{c.ID})
	require.NoError(t, err)

	assert.EqualValues(t, 3, lessons[c.ID])
	assert.EqualValues(t, 1, enrollments[c.ID])
}

func TestLikeIsIdempotentAndUnlikeIsSafe(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "like@example.com")
	repo := NewPostRepository(db)
	post := &model.Post{Title: "t", Content: "c", AuthorID: u.ID}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.Unlike(ctx, u.ID, post.ID))
	require.NoError(t, repo.Like(ctx, u.ID, post.ID))
	require.NoError(t, repo.Like(ctx, u.ID, post.ID))

	counts, err := repo.LikeCounts(ctx, []string{post.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[post.ID])

	liked, err := repo.LikedBy(ctx, u.ID, []string{post.ID})
	require.NoError(t, err)
	assert.True(t, liked[post.ID])

	require.NoError(t, repo.Unlike(ctx, u.ID, post.ID))
	counts, err = repo.LikeCounts(ctx, []string{post.ID})
	require.NoError(t, err)
	assert.Zero(t, counts[post.ID])
}

func TestIncrementShare(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "s@example.com")
	repo := NewPostRepository(db)
	post := &model.Post{Title: "t", Content: "c", AuthorID: u.ID}
	require.NoError(t, repo.Create(ctx, post))

	n, err := repo.IncrementShare(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = repo.IncrementShare(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.IncrementShare(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListEventsRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "ev@example.com")
	repo := NewPostRepository(db)
	base := time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)
	for _, d := range []int{-1, 1, 5, 20} {
		at := base.AddDate(0, 0, d)
		require.NoError(t, repo.Create(ctx, &model.Post{Title: "e", Content: "c", AuthorID: u.ID, EventDate: &at, EventLocation: "Online"}))
	}
	require.NoError(t, repo.Create(ctx, &model.Post{Title: "plain", Content: "c", AuthorID: u.ID}))

	to := base.AddDate(0, 0, 10)
	events, err := repo.ListEvents(ctx, base, &to)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].EventDate.Before(*events[1].EventDate))

	open, err := repo.ListEvents(ctx, base, nil)
	require.NoError(t, err)
	assert.Len(t, open, 3)
}

func TestFollowEdgeIsUnique(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := seedUser(t, db, "a@example.com")
	b := seedUser(t, db, "b@example.com")
	repo := NewFollowRepository(db)

	require.NoError(t, repo.Follow(ctx, a.ID, b.ID))
	require.NoError(t, repo.Follow(ctx, a.ID, b.ID))

	n, err := repo.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	followers, err := repo.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.Name, followers[0].Follower.Name)

	require.NoError(t, repo.Unfollow(ctx, a.ID, b.ID))
	require.NoError(t, repo.Unfollow(ctx, a.ID, b.ID))
	ok, err := repo.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
