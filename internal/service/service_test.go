package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"educonexa_backend/internal/config"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	users    *repository.UserRepository
	courses  *repository.CourseRepository
	lessons  *repository.LessonRepository
	posts    *repository.PostRepository
	follows  *repository.FollowRepository
	certs    *CertificationService
	progress *ProgressService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:  database.DriverSQLite,
		DSN:     fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name),
		LogMode: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	f := &fixture{
		db:      db,
		users:   repository.NewUserRepository(db),
		courses: repository.NewCourseRepository(db),
		lessons: repository.NewLessonRepository(db),
		posts:   repository.NewPostRepository(db),
		follows: repository.NewFollowRepository(db),
	}
	f.certs = NewCertificationService(repository.NewCertificationRepository(db), f.courses, f.users)
	f.progress = NewProgressService(
		db,
		f.lessons,
		repository.NewLessonProgressRepository(db),
		repository.NewEnrollmentRepository(db),
		f.certs,
		nil,
	)
	return f
}

func (f *fixture) user(t *testing.T, email string, role model.UserRole) *model.User {
	t.Helper()
	u := &model.User{Name: "Name " + email, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) course(t *testing.T, authorID string, lessons int) (*model.Course, []model.Lesson) {
	t.Helper()
	ctx := context.Background()
	c := &model.Course{Title: "Go basics", Description: "Learn the basics of Go", Status: model.CoursePublished, AuthorID: authorID}
	require.NoError(t, f.courses.Create(ctx, c))
	out := make([]model.Lesson, 0, lessons)
	for i := 1; i <= lessons; i++ {
		l := model.Lesson{CourseID: c.ID, Title: fmt.Sprintf("Lesson %d", i), Order: i}
		require.NoError(t, f.lessons.Create(ctx, &l))
		out = append(out, l)
	}
	return c, out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
