package audit

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSaveLoginEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := LoginEvent{
		Email:             "a@x.com",
		UserID:            "user-1",
		ClientIP:          "10.0.0.1",
		AuthenticatorName: "password",
		Success:           true,
	}

	mock.ExpectExec(`INSERT INTO audit_messages`).
		WithArgs(
			FacilityAuthPriv,  // facility
			int(SeverityInfo), // severity
			sqlmock.AnyArg(),  // timestamp
			sqlmock.AnyArg(),  // hostname
			"pawgress",        // appname
			sqlmock.AnyArg(),  // procid
			"authn",           // msgid
			sqlmock.AnyArg(),  // sdata (JSON)
			sqlmock.AnyArg(),  // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(event); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveFailedSignup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := SignupEvent{
		Email:        "a@x.com",
		ClientIP:     "10.0.0.1",
		ErrorMessage: "User already exists",
	}

	mock.ExpectExec(`INSERT INTO audit_messages`).
		WithArgs(
			FacilityAuth,
			int(SeverityWarning), // Failed events have warning severity
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"pawgress",
			sqlmock.AnyArg(),
			"signup",
			sqlmock.AnyArg(),
			"a@x.com failed to sign up: User already exists",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(event); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO audit_messages`).WillReturnError(errors.New("relation does not exist"))

	err = NewStoreWithDB(db).Save(TokenEvent{ClientIP: "10.0.0.1", Method: "GET", Path: "/api/dogs", Reason: "missing"})
	if err == nil {
		t.Error("Save() expected error")
	}
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{db: nil}

	if err := store.Save(WhoamiEvent{UserID: "user-1"}); err != nil {
		t.Errorf("Save() with nil db should not error, got: %v", err)
	}
}

func TestNewStoreEmptyURL(t *testing.T) {
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store != nil {
		t.Errorf("NewStore(\"\") = %v, want nil", store)
	}
}

func TestStoreClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	store := NewStoreWithDB(db)

	mock.ExpectClose()

	if err := store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreCloseNilDB(t *testing.T) {
	store := &Store{db: nil}

	if err := store.Close(); err != nil {
		t.Errorf("Close() with nil db should not error, got: %v", err)
	}
}
