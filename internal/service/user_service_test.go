package service

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/app"
	"github.com/atomyssd/dino-club/internal/repository"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	migrator, err := app.NewMigrator(db)
	require.NoError(t, err)
	require.NoError(t, migrator.Run(context.Background()))

	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewEnrollmentRepository(db),
		zap.NewNop(),
	)
}

func TestRegisterThenEnrollThenProfile(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, 1, "Ann Lee", "+998901234567"))
	require.NoError(t, svc.Enroll(ctx, 1, "math"))

	profile, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ann Lee", profile.FullName)
	assert.Equal(t, "+998901234567", profile.Phone)
	require.NotNil(t, profile.CourseKey)
	assert.Equal(t, "math", *profile.CourseKey)
}

func TestEnrollRejectsUnknownCourse(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, 1, "Ann Lee", "+998901234567"))
	assert.Error(t, svc.Enroll(ctx, 1, "chemistry"))
}
