package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"cheznous/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestForumRepository_CreateWithCreator(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewForumRepository(db)
	ctx := context.Background()

	t.Run("Creates forum and admin membership atomically", func(t *testing.T) {
		forum := &models.Forum{
			Title:       "Le maquis du soir",
			IsPrivate:   true,
			CreatorID:   7,
			MemberLimit: models.MemberLimitDefault,
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "forums"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "forum_members"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.CreateWithCreator(ctx, forum)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), forum.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back forum insert when membership insert fails", func(t *testing.T) {
		forum := &models.Forum{
			Title:     "Maquis fantôme",
			CreatorID: 7,
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "forums"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "forum_members"`)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateWithCreator(ctx, forum)
		assert.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeInternal))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForumRepository_AddMember(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewForumRepository(db)
	ctx := context.Background()

	t.Run("Inserts new membership", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO forum_members`)).
			WithArgs(5, 9, false).
			WillReturnResult(sqlmock.NewResult(1, 1))

		inserted, err := repo.AddMember(ctx, 5, 9, false)
		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate join is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO forum_members`)).
			WithArgs(5, 9, false).
			WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.AddMember(ctx, 5, 9, false)
		assert.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForumRepository_IsMember(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewForumRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "forum_members" WHERE forum_id = $1 AND user_id = $2`)).
		WithArgs(5, 9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.IsMember(ctx, 5, 9)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForumRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewForumRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT forums\.\*`).
		WillReturnError(errors.New("record not found"))

	_, err := repo.GetByID(ctx, 99)
	assert.Error(t, err)
}
