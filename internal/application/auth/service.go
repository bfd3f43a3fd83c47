package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oncampus-api/internal/domain"
	jwtinfra "github.com/oncampus-api/internal/infrastructure/jwt"
	"github.com/oncampus-api/internal/infrastructure/smtp"
	"github.com/oncampus-api/internal/pkg/id"
	"github.com/oncampus-api/internal/pkg/otp"
	"github.com/oncampus-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// TokenPair is the access/refresh pair returned by every issuing operation.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	SendOTP(ctx context.Context, req SendOTPRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*TokenPair, error)
	Login(ctx context.Context, req domain.LoginRequest) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	MarkActive(ctx context.Context, userID string) error
}

type otpStore interface {
	Put(ctx context.Context, c *domain.OtpChallenge) error
	Get(ctx context.Context, email string) (*domain.OtpChallenge, error)
}

type blacklistStore interface {
	Add(ctx context.Context, token string, expiresAt int64) error
	Contains(ctx context.Context, token string) (bool, error)
}

type tokenSigner interface {
	SignAccess(subject string) (string, error)
	SignRefresh(subject string) (string, error)
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

type service struct {
	userRepo      userStore
	otpRepo       otpStore
	blacklistRepo blacklistStore
	signer        tokenSigner
	mailer        smtp.Mailer
	emailDomain   string
	otpTTL        time.Duration
}

type ServiceDeps struct {
	UserRepo      userStore
	OtpRepo       otpStore
	BlacklistRepo blacklistStore
	Signer        tokenSigner
	Mailer        smtp.Mailer
	EmailDomain   string
	OTPTTL        time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		userRepo:      deps.UserRepo,
		otpRepo:       deps.OtpRepo,
		blacklistRepo: deps.BlacklistRepo,
		signer:        deps.Signer,
		mailer:        deps.Mailer,
		emailDomain:   deps.EmailDomain,
		otpTTL:        deps.OTPTTL,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if strings.ContainsAny(req.Username, " @/") {
		return nil, fmt.Errorf("username cannot contain spaces, '@' or '/': %w", domain.ErrBadRequest)
	}
	if err := s.checkEmailDomain(req.Email); err != nil {
		return nil, err
	}
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, fmt.Errorf("dob must be in YYYY-MM-DD format: %w", domain.ErrBadRequest)
	}

	// Check-then-insert: two concurrent registrations for the same address
	// can both pass the lookup. Contention on a single address is low enough
	// that this window is accepted.
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user with this email already exists: %w", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Roll:         req.Roll,
		DOB:          dob,
		IsActive:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) SendOTP(ctx context.Context, req SendOTPRequest) error {
	if err := validate.Struct(&req); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if err := s.checkEmailDomain(req.Email); err != nil {
		return err
	}

	code, err := otp.NewCode()
	if err != nil {
		return err
	}
	challenge := &domain.OtpChallenge{
		Email:     req.Email,
		Code:      code,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.otpRepo.Put(ctx, challenge); err != nil {
		return err
	}

	// The stored challenge is the success signal; mail delivery is
	// best-effort and its failure is invisible to the caller.
	go func() {
		if err := s.mailer.SendEmail(req.Email, "OnCampus Email Verification",
			"The otp for OnCampus is "+code); err != nil {
			slog.Warn("failed to send otp email", "email", req.Email, "err", err)
		}
	}()

	return nil
}

func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*TokenPair, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	challenge, err := s.otpRepo.Get(ctx, req.Email)
	if err != nil {
		// A missing challenge is indistinguishable from a wrong code.
		return nil, fmt.Errorf("invalid OTP: %w", domain.ErrUnauthorized)
	}
	expiry := time.Unix(challenge.CreatedAt, 0).Add(s.otpTTL)
	if challenge.Code != req.OTP || challenge.Email != req.Email || !expiry.After(time.Now()) {
		return nil, fmt.Errorf("invalid OTP: %w", domain.ErrUnauthorized)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP: %w", domain.ErrUnauthorized)
	}
	if err := s.userRepo.MarkActive(ctx, u.UserID); err != nil {
		return nil, err
	}
	return s.issuePair(u.UserID)
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*TokenPair, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	u, err := s.userRepo.GetByUsername(ctx, req.User)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	return s.issuePair(u.UserID)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	// Rotation: the presented refresh token is revoked before the new pair is
	// issued, so it cannot be replayed. The prior access token stays valid
	// until it expires; only logout revokes access tokens.
	if err := s.blacklistRepo.Add(ctx, refreshToken, claims.ExpiresAt.Unix()); err != nil {
		return nil, err
	}
	return s.issuePair(claims.Subject)
}

func (s *service) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := s.blacklistRepo.Add(ctx, refreshToken, claims.ExpiresAt.Unix()); err != nil {
		return err
	}
	accessExpiry := claims.ExpiresAt.Unix()
	if accessClaims, err := s.signer.Verify(accessToken); err == nil {
		accessExpiry = accessClaims.ExpiresAt.Unix()
	}
	return s.blacklistRepo.Add(ctx, accessToken, accessExpiry)
}

// validateRefreshToken runs the shared refresh/logout precondition chain:
// decodable, refresh kind, not yet revoked.
func (s *service) validateRefreshToken(ctx context.Context, refreshToken string) (*jwtinfra.Claims, error) {
	claims, err := s.signer.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	if claims.Kind != jwtinfra.KindRefresh {
		return nil, fmt.Errorf("use refresh token: %w", domain.ErrUnauthorized)
	}
	revoked, err := s.blacklistRepo.Contains(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("token revoked: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}

func (s *service) issuePair(subject string) (*TokenPair, error) {
	access, err := s.signer.SignAccess(subject)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signer.SignRefresh(subject)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) checkEmailDomain(email string) error {
	if !strings.HasSuffix(email, s.emailDomain) {
		return fmt.Errorf("only %s email addresses are allowed: %w", s.emailDomain, domain.ErrBadRequest)
	}
	return nil
}
