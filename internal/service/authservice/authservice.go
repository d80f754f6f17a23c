package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/validate"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateLawyerProfile(ctx context.Context, profile *domain.LawyerProfile) error
	FindLawyerProfileByBarNumber(ctx context.Context, barNumber string) (*domain.LawyerProfile, error)
}

type WalletRepo interface {
	CreateWallet(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error)
}

type Service struct {
	userRepo    UserRepo
	walletRepo  WalletRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, walletRepo WalletRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrBarNumberTaken     = errors.New("bar number already registered")
	ErrInvalidBarNumber   = errors.New("invalid bar number format")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) RegisterAsker(ctx context.Context, email, password string) (*domain.User, error) {
	return s.register(ctx, email, password, domain.RoleAsker, nil)
}

// RegisterLawyer creates the user together with a pending lawyer
// profile and a zero-balance wallet.
func (s *Service) RegisterLawyer(ctx context.Context, email, password, fullName, barNumber string) (*domain.User, error) {
	if !validate.IsBarNumber(barNumber) {
		return nil, ErrInvalidBarNumber
	}

	existingProfile, err := s.userRepo.FindLawyerProfileByBarNumber(ctx, barNumber)
	if err != nil {
		zap.L().Error("can't check bar number: ", zap.Error(err))
		return nil, err
	}
	if existingProfile != nil {
		zap.L().Info("bar number already registered", zap.String("bar_number", barNumber))
		return nil, ErrBarNumberTaken
	}

	profile := &domain.LawyerProfile{
		FullName:           fullName,
		BarNumber:          barNumber,
		VerificationStatus: domain.VerificationPending,
	}
	return s.register(ctx, email, password, domain.RoleLawyer, profile)
}

func (s *Service) register(ctx context.Context, email, password string, role domain.Role, profile *domain.LawyerProfile) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, email: ", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if profile != nil {
		profile.UserID = newUser.ID
		if err := s.userRepo.CreateLawyerProfile(ctx, profile); err != nil {
			zap.L().Error("can't create lawyer profile: ", zap.Error(err))
			return nil, err
		}
		if _, err := s.walletRepo.CreateWallet(ctx, newUser.ID); err != nil {
			zap.L().Error("can't create wallet: ", zap.Error(err))
			return nil, err
		}
	}

	zap.L().Info("user successfully registered", zap.String("email", email), zap.String("role", string(role)))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID string, role domain.Role) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
