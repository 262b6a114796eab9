package usecase

import (
	"context"
	"time"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
	"request-portal/pkg/mailer"
	"request-portal/pkg/token"

	"github.com/stretchr/testify/mock"
)

// MockRoleRepository mocks the RoleRepository interface
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Role), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository mocks the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRequestRepository mocks the RequestRepository interface
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id int64) (*entity.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) FindAll(ctx context.Context) ([]*entity.Request, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, request *entity.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id int64) (*entity.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) CountByStatus(ctx context.Context) (*entity.RequestStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RequestStats), args.Error(1)
}

// MockActivityLogRepository mocks the ActivityLogRepository interface
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *entity.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) FindAll(ctx context.Context) ([]*entity.ActivityLog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.ActivityLog), args.Error(1)
}

// passthroughTx runs fn against the same mocked repository. err, when set,
// is returned after fn succeeds to simulate a failed commit.
type passthroughTx struct {
	repo  *repository.Repository
	calls int
	err   error
}

func (t *passthroughTx) RunInTx(ctx context.Context, fn func(repo *repository.Repository) error) error {
	t.calls++
	if err := fn(t.repo); err != nil {
		return err
	}
	return t.err
}

// MockTokenIssuer mocks TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(identity token.Identity) (string, time.Time, error) {
	args := m.Called(identity)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenIssuer) Parse(tokenString string) (*token.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Claims), args.Error(1)
}

// MockSender mocks mailer.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) (*mailer.Receipt, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailer.Receipt), args.Error(1)
}

type mockRepos struct {
	Role        *MockRoleRepository
	User        *MockUserRepository
	Profile     *MockProfileRepository
	Request     *MockRequestRepository
	ActivityLog *MockActivityLogRepository
	Tx          *passthroughTx
	Repository  *repository.Repository
}

func newMockRepos() *mockRepos {
	m := &mockRepos{
		Role:        new(MockRoleRepository),
		User:        new(MockUserRepository),
		Profile:     new(MockProfileRepository),
		Request:     new(MockRequestRepository),
		ActivityLog: new(MockActivityLogRepository),
	}
	m.Repository = &repository.Repository{
		Role:        m.Role,
		User:        m.User,
		Profile:     m.Profile,
		Request:     m.Request,
		ActivityLog: m.ActivityLog,
	}
	m.Tx = &passthroughTx{repo: m.Repository}
	m.Repository.Tx = m.Tx
	return m
}

func (m *mockRepos) AssertExpectations(t mock.TestingT) {
	m.Role.AssertExpectations(t)
	m.User.AssertExpectations(t)
	m.Profile.AssertExpectations(t)
	m.Request.AssertExpectations(t)
	m.ActivityLog.AssertExpectations(t)
}

func strPtr(s string) *string {
	return &s
}
