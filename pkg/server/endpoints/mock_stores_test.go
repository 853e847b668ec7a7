package endpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"github.com/annie-elequin/pawgress/pkg/identity"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FetchUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockPetsStore implements store.PetsStore for testing using testify/mock
type MockPetsStore struct {
	mock.Mock
}

func (m *MockPetsStore) ListPets(ctx context.Context, userID string, filter store.PetFilter) ([]model.Pet, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetsStore) FetchPet(ctx context.Context, id string) (*model.Pet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetsStore) CreatePet(ctx context.Context, pet *model.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetsStore) UpdatePet(ctx context.Context, pet *model.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetsStore) DeletePet(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockActivitiesStore implements store.ActivitiesStore for testing using testify/mock
type MockActivitiesStore struct {
	mock.Mock
}

func (m *MockActivitiesStore) FetchActivity(ctx context.Context, id string) (*model.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivitiesStore) CreateActivity(ctx context.Context, activity *model.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivitiesStore) UpdateActivity(ctx context.Context, activity *model.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

// MockBehaviorsStore implements store.BehaviorsStore for testing using testify/mock
type MockBehaviorsStore struct {
	mock.Mock
}

func (m *MockBehaviorsStore) ListBehaviors(ctx context.Context, userID string) ([]model.Behavior, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Behavior), args.Error(1)
}

func (m *MockBehaviorsStore) FetchBehavior(ctx context.Context, id string) (*model.Behavior, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Behavior), args.Error(1)
}

func (m *MockBehaviorsStore) CreateBehavior(ctx context.Context, behavior *model.Behavior) error {
	args := m.Called(behavior)
	return args.Error(0)
}

func (m *MockBehaviorsStore) UpdateBehavior(ctx context.Context, behavior *model.Behavior) error {
	args := m.Called(behavior)
	return args.Error(0)
}

func (m *MockBehaviorsStore) DeleteBehavior(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCriteriaStore implements store.CriteriaStore for testing using testify/mock
type MockCriteriaStore struct {
	mock.Mock
}

func (m *MockCriteriaStore) ListCriteria(ctx context.Context, userID string) ([]model.Criterion, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Criterion), args.Error(1)
}

func (m *MockCriteriaStore) FetchCriterion(ctx context.Context, id string) (*model.Criterion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Criterion), args.Error(1)
}

func (m *MockCriteriaStore) CreateCriterion(ctx context.Context, criterion *model.Criterion) error {
	args := m.Called(criterion)
	return args.Error(0)
}

func (m *MockCriteriaStore) UpdateCriterion(ctx context.Context, criterion *model.Criterion) error {
	args := m.Called(criterion)
	return args.Error(0)
}

func (m *MockCriteriaStore) DeleteCriterion(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

// requestAs builds a request that already passed the bearer middleware as
// userID.
func requestAs(method, target, body, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID == "" {
		return req
	}

	id := &identity.Identity{
		UserID:    userID,
		Email:     userID + "@example.com",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	return req.WithContext(identity.Set(req.Context(), id))
}

func withMuxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}
