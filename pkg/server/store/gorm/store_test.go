package gorm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

var (
	userColumns     = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}
	petRowColumns   = []string{"id", "name", "type", "breed", "user_id", "created_at", "updated_at"}
	activityRowCols = []string{"id", "type", "notes", "pet_id", "scheduled_for", "completed", "created_at", "updated_at"}
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), model.ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), store.ErrDuplicate)

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, translate(other))
}

func TestUsersStore_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUsersStore(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "a@x.com", "$2a$10$hash", "Ann", now, now))

	user, err := s.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersStore_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUsersStore(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := s.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUsersStore_FetchUser_PreloadsPets(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUsersStore(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "a@x.com", "hash", "Ann", now, now))
	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE "pets"."user_id" = \$1 ORDER BY created_at desc`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(petRowColumns).AddRow("p1", "Rex", "DOG", "Lab", "u1", now, now))

	user, err := s.FetchUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, user.Pets, 1)
	assert.Equal(t, model.PetTypeDog, user.Pets[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersStore_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CreateUser(context.Background(), &model.User{ID: "u1", Email: "a@x.com", PasswordHash: "hash", Name: "Ann"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersStore_CreateUser_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	err := s.CreateUser(context.Background(), &model.User{ID: "u2", Email: "a@x.com"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestPetsStore_ListPets(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE user_id = \$1 ORDER BY created_at desc`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(petRowColumns).
			AddRow("p2", "Tom", "CAT", "", "u1", now, now).
			AddRow("p1", "Rex", "DOG", "Lab", "u1", now.Add(-time.Hour), now))

	pets, err := s.ListPets(context.Background(), "u1", store.PetFilter{})
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "p2", pets[0].ID)
	assert.Equal(t, model.PetTypeCat, pets[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsStore_ListPets_DogsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)
	dog := model.PetTypeDog

	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE user_id = \$1 AND type = \$2 ORDER BY created_at desc`).
		WithArgs("u1", "DOG").
		WillReturnRows(sqlmock.NewRows(petRowColumns))

	pets, err := s.ListPets(context.Background(), "u1", store.PetFilter{Type: &dog})
	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsStore_FetchPet(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(petRowColumns).AddRow("p1", "Rex", "DOG", "Lab", "u1", now, now))
	mock.ExpectQuery(`SELECT \* FROM "activities" WHERE "activities"."pet_id" = \$1 ORDER BY scheduled_for asc`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(activityRowCols).AddRow("a1", "walk", "", "p1", now, false, now, now))

	pet, err := s.FetchPet(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", pet.Owner())
	require.Len(t, pet.Activities, 1)
	assert.Equal(t, "walk", pet.Activities[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsStore_FetchPet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)

	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(petRowColumns))

	_, err := s.FetchPet(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPetsStore_FetchPet_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE id = \$1`).WillReturnError(boom)

	_, err := s.FetchPet(context.Background(), "p1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestPetsStore_CreatePet(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "pets"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CreatePet(context.Background(), &model.Pet{ID: "p1", Name: "Rex", Type: model.PetTypeDog, UserID: "u1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsStore_UpdatePet(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "pets" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpdatePet(context.Background(), &model.Pet{ID: "p1", Name: "Rexy", Type: model.PetTypeDog, UserID: "u1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsStore_DeletePet(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "pets" WHERE id = \$1`).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeletePet(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsStore_DeletePet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPetsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "pets" WHERE id = \$1`).WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, s.DeletePet(context.Background(), "gone"), model.ErrNotFound)
}

func TestActivitiesStore_FetchActivity_LoadsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewActivitiesStore(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "activities" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(activityRowCols).AddRow("a1", "vet", "checkup", "p1", now, false, now, now))
	mock.ExpectQuery(`SELECT \* FROM "pets" WHERE "pets"."id" = \$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(petRowColumns).AddRow("p1", "Rex", "DOG", "Lab", "u1", now, now))

	activity, err := s.FetchActivity(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, activity.Pet)
	assert.Equal(t, "u1", activity.Owner())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivitiesStore_CreateActivity(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewActivitiesStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "activities"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CreateActivity(context.Background(), &model.Activity{
		ID: "a1", Type: "walk", PetID: "p1", ScheduledFor: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivitiesStore_UpdateActivity_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewActivitiesStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "activities" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.UpdateActivity(context.Background(), &model.Activity{ID: "a1", Completed: true})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestBehaviorsStore(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewBehaviorsStore(db)
	now := time.Now()
	cols := []string{"id", "title", "description", "category", "user_id", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT \* FROM "behaviors" WHERE user_id = \$1 ORDER BY created_at desc`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("b1", "Sit", "", "obedience", "u1", now, now))

	behaviors, err := s.ListBehaviors(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, behaviors, 1)
	assert.Equal(t, "Sit", behaviors[0].Title)

	mock.ExpectQuery(`SELECT \* FROM "behaviors" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = s.FetchBehavior(context.Background(), "b9")
	assert.ErrorIs(t, err, model.ErrNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "behaviors" WHERE id = \$1`).WithArgs("b1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteBehavior(context.Background(), "b1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCriteriaStore_FetchCriterion(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCriteriaStore(db)
	now := time.Now()
	cols := []string{"id", "name", "description", "difficulty", "notes", "user_id", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT \* FROM "criteria" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("c1", "Duration", "", "advanced", "", "u1", now, now))

	criterion, err := s.FetchCriterion(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, criterion.Difficulty)
	assert.Equal(t, model.DifficultyAdvanced, *criterion.Difficulty)

	mock.ExpectQuery(`SELECT \* FROM "criteria" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("c2", "Distance", "", nil, "", "u1", now, now))

	criterion, err = s.FetchCriterion(context.Background(), "c2")
	require.NoError(t, err)
	assert.Nil(t, criterion.Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCriteriaStore_Create(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCriteriaStore(db)
	level := model.DifficultyBeginner

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "criteria"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CreateCriterion(context.Background(), &model.Criterion{ID: "c1", Name: "Latency", Difficulty: &level, UserID: "u1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthStore(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewHealthStore(db)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, s.CheckConnectivity(context.Background()))

	mock.ExpectExec(`SELECT 1`).WillReturnError(errors.New("connection refused"))
	assert.Error(t, s.CheckConnectivity(context.Background()))
}
