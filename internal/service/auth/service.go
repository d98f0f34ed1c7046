package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/viniciussvasques/innexar-hr/internal/domain/user"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/jwt"
)

type ServiceImpl struct {
	db         *database.DB
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewService(db *database.DB, userRepo user.Repository, jwtService jwt.Service) user.Service {
	return &ServiceImpl{
		db:         db,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *ServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.IsAdmin)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	resp := user.LoginResponse{AccessToken: token}
	resp.User.ID = u.ID
	resp.User.Email = u.Email
	resp.User.FullName = u.FullName
	resp.User.IsAdmin = u.IsAdmin
	resp.User.EmployeeID = u.EmployeeID
	return resp, nil
}

func (s *ServiceImpl) Logout(_ context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}
