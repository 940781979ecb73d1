package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomyssd/dino-club/internal/app"
	"github.com/atomyssd/dino-club/internal/model"
)

// newTestDB поднимает in-memory SQLite со схемой из миграций
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	// У каждого соединения пула своя in-memory база, держим одно
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	migrator, err := app.NewMigrator(db)
	require.NoError(t, err)
	require.NoError(t, migrator.Run(context.Background()))

	return db
}

func TestUserUpsertReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.User{TelegramID: 1, FullName: "Old Name", Phone: "+998900000000"}))
	require.NoError(t, repo.Upsert(ctx, &model.User{TelegramID: 1, FullName: "New Name", Phone: "+998911111111"}))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "New Name", users[0].FullName)
	assert.Equal(t, "+998911111111", users[0].Phone)
}

func TestGetProfileUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	profile, err := repo.GetProfile(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetProfileWithAndWithoutCourse(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	enrollments := NewEnrollmentRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Upsert(ctx, &model.User{TelegramID: 1, FullName: "Ann Lee", Phone: "+998901234567"}))

	profile, err := users.GetProfile(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ann Lee", profile.FullName)
	assert.Nil(t, profile.CourseKey)

	require.NoError(t, enrollments.Upsert(ctx, 1, "math"))

	profile, err = users.GetProfile(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotNil(t, profile.CourseKey)
	assert.Equal(t, "math", *profile.CourseKey)
}

func TestEnrollmentUpsertReplacesCourse(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	enrollments := NewEnrollmentRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Upsert(ctx, &model.User{TelegramID: 1, FullName: "Ann Lee", Phone: "+998901234567"}))
	require.NoError(t, enrollments.Upsert(ctx, 1, "english"))
	require.NoError(t, enrollments.Upsert(ctx, 1, "gymnastics"))

	profile, err := users.GetProfile(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, profile.CourseKey)
	assert.Equal(t, "gymnastics", *profile.CourseKey)
}

func TestListIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.User{TelegramID: 10, FullName: "A", Phone: "+998900000001"}))
	require.NoError(t, repo.Upsert(ctx, &model.User{TelegramID: 20, FullName: "B", Phone: "+998900000002"}))

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 20}, ids)
}

func TestUserDeleteAllRemovesEnrollments(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	enrollments := NewEnrollmentRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Upsert(ctx, &model.User{TelegramID: 1, FullName: "Ann Lee", Phone: "+998901234567"}))
	require.NoError(t, enrollments.Upsert(ctx, 1, "english"))

	require.NoError(t, users.DeleteAll(ctx))

	all, err := users.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM enrollments`).Scan(&count))
	assert.Zero(t, count)
}

func TestQuestionsOrderedFreshFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	questions := NewQuestionRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Upsert(ctx, &model.User{TelegramID: 1, FullName: "Ann Lee", Phone: "+998901234567"}))
	require.NoError(t, questions.Insert(ctx, 1, "first question"))
	require.NoError(t, questions.Insert(ctx, 1, "second question"))

	list, err := questions.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// При равной дате побеждает больший id, то есть более поздний вопрос
	assert.Equal(t, "second question", list[0].Text)
	assert.Greater(t, list[0].ID, list[1].ID)
	assert.Equal(t, "Ann Lee", list[0].UserName)
}

func TestQuestionFromUnknownUserHasEmptyName(t *testing.T) {
	db := newTestDB(t)
	questions := NewQuestionRepository(db)
	ctx := context.Background()

	require.NoError(t, questions.Insert(ctx, 555, "anonymous question"))

	list, err := questions.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(555), list[0].UserID)
	assert.Empty(t, list[0].UserName)
}

func TestQuestionDeleteAll(t *testing.T) {
	db := newTestDB(t)
	questions := NewQuestionRepository(db)
	ctx := context.Background()

	require.NoError(t, questions.Insert(ctx, 1, "q1"))
	require.NoError(t, questions.Insert(ctx, 2, "q2"))
	require.NoError(t, questions.DeleteAll(ctx))

	list, err := questions.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
