package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/pkg/token"
	"github.com/station-booking/internal/usecase/dto"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokens    *token.Manager
	logger    *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	tokens *token.Manager,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, errors.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issue(ctx, user)
}

// Refresh rotates a refresh token: the presented token must be live in the
// store, its entry is deleted and a new pair is issued.
func (uc *AuthUseCase) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := uc.tokens.Parse(req.Refresh)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}
	if claims.TokenType != token.TypeRefresh {
		return nil, errors.ErrInvalidToken
	}

	userID, err := uc.tokenRepo.Get(ctx, claims.ID)
	if err != nil || userID != claims.UserID {
		return nil, errors.ErrInvalidToken
	}

	if err := uc.tokenRepo.Delete(ctx, claims.ID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	return uc.issue(ctx, user)
}

// Verify reports whether the supplied token parses, is unexpired and, for
// refresh tokens, is still live in the store.
func (uc *AuthUseCase) Verify(ctx context.Context, req dto.VerifyRequest) error {
	claims, err := uc.tokens.Parse(req.Token)
	if err != nil {
		return errors.ErrInvalidToken
	}

	if claims.TokenType == token.TypeRefresh {
		if _, err := uc.tokenRepo.Get(ctx, claims.ID); err != nil {
			return errors.ErrInvalidToken
		}
	}
	return nil
}

func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *AuthUseCase) UpdateMe(
	ctx context.Context,
	userID int64,
	req dto.ProfileUpdateRequest,
) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password", zap.Error(err))
			return nil, errors.ErrInternalServer
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) issue(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	pair, err := uc.tokens.IssuePair(user.ID, user.IsAdmin)
	if err != nil {
		uc.logger.Error("Failed to issue tokens", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	if err := uc.tokenRepo.Save(ctx, pair.RefreshID, user.ID, uc.tokens.RefreshTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}
