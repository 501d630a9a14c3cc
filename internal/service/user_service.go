package service

import (
	"context"
	"time"

	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Show(ctx context.Context, id uint) (*dto.UserResponse, error)
	ListActive(ctx context.Context) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory  unitofwork.RepositoryFactory
	identifiers IIdentifierService
	now         func() time.Time
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, identifiers IIdentifierService, now func() time.Time) IUserService {
	if now == nil {
		now = time.Now
	}
	return &userService{
		uowFactory:  uowFactory,
		identifiers: identifiers,
		now:         now,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("a user with email %s already exists", req.Email)
	}

	userID, err := s.identifiers.NextUserID(ctx, uow)
	if err != nil {
		return nil, err
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("failed to hash password", err)
		}
		str := string(hash)
		passwordHash = &str
	}

	user := entity.User{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Department:   req.Department,
		Position:     req.Position,
		Role:         req.Role,
		IsActive:     true,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toUserResponse(&user), nil
}

func (s *userService) Show(ctx context.Context, id uint) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user %d not found", id)
	}
	return toUserResponse(user), nil
}

func (s *userService) ListActive(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:         u.Id,
		UserID:     u.UserID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Email:      u.Email,
		Department: u.Department,
		Position:   u.Position,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}
