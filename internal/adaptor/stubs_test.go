package adaptor

import (
	"context"

	"request-portal/internal/dto/request"
	"request-portal/internal/dto/response"
	"request-portal/pkg/token"
)

// Each stub answers from its function fields; an unset field panics so a
// test notices unexpected calls.

type stubAuthService struct {
	signIn     func(req *request.SignInRequest) (*response.SessionResponse, error)
	getSession func(tokenString string) (*response.SessionResponse, error)
	errorPage  string
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*token.Identity, error) {
	panic("unexpected Authenticate")
}

func (s *stubAuthService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.SessionResponse, error) {
	return s.signIn(req)
}

func (s *stubAuthService) GetSession(ctx context.Context, tokenString string) (*response.SessionResponse, error) {
	return s.getSession(tokenString)
}

func (s *stubAuthService) SafeRedirect(callbackURL string) string {
	return callbackURL
}

func (s *stubAuthService) SignInErrorPage() string {
	return s.errorPage
}

type stubUserService struct {
	get    func(id int64) (*response.UserResponse, error)
	list   func() ([]response.UserResponse, error)
	create func(req *request.CreateUserRequest) (*response.UserResponse, error)
	update func(id int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	delete func(id int64) error
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*response.UserResponse, error) {
	return s.get(id)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	return s.list()
}

func (s *stubUserService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	return s.create(req)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	return s.update(id, req)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.delete(id)
}

type stubRequestService struct {
	list   func() ([]response.RequestResponse, error)
	create func(req *request.CreateRequestRequest) (*response.RequestResponse, error)
	update func(id int64, req *request.UpdateRequestRequest) (*response.RequestResponse, error)
	delete func(id int64) error
	stats  func() (*response.RequestStatsResponse, error)
}

func (s *stubRequestService) ListRequests(ctx context.Context) ([]response.RequestResponse, error) {
	return s.list()
}

func (s *stubRequestService) CreateRequest(ctx context.Context, req *request.CreateRequestRequest) (*response.RequestResponse, error) {
	return s.create(req)
}

func (s *stubRequestService) UpdateRequest(ctx context.Context, id int64, req *request.UpdateRequestRequest) (*response.RequestResponse, error) {
	return s.update(id, req)
}

func (s *stubRequestService) DeleteRequest(ctx context.Context, id int64) error {
	return s.delete(id)
}

func (s *stubRequestService) GetStats(ctx context.Context) (*response.RequestStatsResponse, error) {
	return s.stats()
}

type stubActivityLogService struct {
	list func() ([]response.ActivityLogResponse, error)
}

func (s *stubActivityLogService) ListActivityLogs(ctx context.Context) ([]response.ActivityLogResponse, error) {
	return s.list()
}

type stubMailService struct {
	send func(req *request.SendMailRequest) (*response.MailResponse, error)
}

func (s *stubMailService) Send(ctx context.Context, req *request.SendMailRequest) (*response.MailResponse, error) {
	return s.send(req)
}
