package auth

import (
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/security"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
)

// AuthUseCase handles registration, login, token verification and profile removal
type AuthUseCase struct {
	unitOfWork   persistence.UnitOfWork
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenService
	audit        usecase.AuditRecorder
	timeProvider core.TimeProvider
	logger       core.Logger
}

var _ usecase.AuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	unitOfWork persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	audit usecase.AuditRecorder,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		unitOfWork:   unitOfWork,
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
