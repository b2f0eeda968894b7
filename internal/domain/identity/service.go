package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartwise/heartwise/internal/platform/auth"
	"github.com/heartwise/heartwise/internal/platform/httpx"
	"github.com/heartwise/heartwise/internal/platform/mail"
)

type Service struct {
	users     UserRepository
	tokens    *auth.Tokens
	sender    mail.EmailSender
	templates *mail.TemplateEngine
	logger    zerolog.Logger
}

func NewService(users UserRepository, tokens *auth.Tokens, sender mail.EmailSender, templates *mail.TemplateEngine, logger zerolog.Logger) *Service {
	return &Service{
		users:     users,
		tokens:    tokens,
		sender:    sender,
		templates: templates,
		logger:    logger,
	}
}

// Register creates an account and issues a session token. The welcome email
// is best-effort: a delivery failure is logged and registration still
// succeeds.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", httpx.Internal(err)
	}

	u := &User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, "", httpx.Conflict("User already exists")
		}
		return nil, "", httpx.Internal(err)
	}

	token, err := s.tokens.Issue(u.ID.String())
	if err != nil {
		return nil, "", httpx.Internal(err)
	}

	subject, body, err := s.templates.Render(mail.TemplateWelcome, map[string]string{"email": email})
	if err == nil {
		err = s.sender.SendEmail(ctx, email, subject, body)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to send welcome email")
	}

	return u, token, nil
}

// Login checks credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", httpx.NotFound("User doesn't exist")
		}
		return nil, "", httpx.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", httpx.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(u.ID.String())
	if err != nil {
		return nil, "", httpx.Internal(err)
	}
	return u, token, nil
}

// GetProfile returns the identity projection for the session's user, or
// Unauthorized if that user no longer exists.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, httpx.Unauthorized("User not found")
		}
		return Profile{}, httpx.Internal(err)
	}
	return u.Profile(), nil
}

// SendVerifyOTP issues and emails a verification passcode. It returns
// sent=false without error when the account is already verified.
func (s *Service) SendVerifyOTP(ctx context.Context, userID uuid.UUID) (sent bool, err error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, httpx.Unauthorized("User not found")
		}
		return false, httpx.Internal(err)
	}
	if u.IsVerified {
		return false, nil
	}

	otp, err := auth.IssueOTP(time.Now())
	if err != nil {
		return false, httpx.Internal(err)
	}
	u.VerifyOTP = otp.Code
	u.VerifyOTPExpiresAt = &otp.ExpiresAt
	if err := s.users.Update(ctx, u); err != nil {
		return false, httpx.Internal(err)
	}

	// Unlike the welcome email, OTP delivery is awaited: without the code
	// the flow cannot continue.
	if err := s.sendOTPEmail(ctx, u.Email, mail.TemplateVerifyOTP, otp.Code); err != nil {
		return false, err
	}
	return true, nil
}

// VerifyEmail checks the submitted passcode and marks the account verified.
// Verification is one-way: there is no transition back to unverified.
func (s *Service) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFound("User not found")
		}
		return httpx.Internal(err)
	}

	if err := validateOTP(u.VerifyOTP, u.VerifyOTPExpiresAt, code); err != nil {
		return err
	}

	u.IsVerified = true
	u.VerifyOTP = ""
	u.VerifyOTPExpiresAt = nil
	if err := s.users.Update(ctx, u); err != nil {
		return httpx.Internal(err)
	}
	return nil
}

// SendResetOTP issues and emails a password reset passcode. Reset does not
// gate on verification state.
func (s *Service) SendResetOTP(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFound("User not found")
		}
		return httpx.Internal(err)
	}

	otp, err := auth.IssueOTP(time.Now())
	if err != nil {
		return httpx.Internal(err)
	}
	u.ResetOTP = otp.Code
	u.ResetOTPExpiresAt = &otp.ExpiresAt
	if err := s.users.Update(ctx, u); err != nil {
		return httpx.Internal(err)
	}

	return s.sendOTPEmail(ctx, u.Email, mail.TemplateResetOTP, otp.Code)
}

// ResetPassword replaces the password hash after checking the reset passcode.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFound("User doesn't exist")
		}
		return httpx.Internal(err)
	}

	if err := validateOTP(u.ResetOTP, u.ResetOTPExpiresAt, code); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return httpx.Internal(err)
	}
	u.PasswordHash = string(hash)
	u.ResetOTP = ""
	u.ResetOTPExpiresAt = nil
	if err := s.users.Update(ctx, u); err != nil {
		return httpx.Internal(err)
	}
	return nil
}

func (s *Service) sendOTPEmail(ctx context.Context, to, templateID, code string) error {
	subject, body, err := s.templates.Render(templateID, map[string]string{"otp": code})
	if err != nil {
		return httpx.Internal(err)
	}
	if err := s.sender.SendEmail(ctx, to, subject, body); err != nil {
		return httpx.Unavailable("Failed to send OTP email.", err)
	}
	return nil
}

// validateOTP maps passcode checks onto the client-facing messages. Mismatch
// always reads "Invalid OTP"; a matching but stale code always reads
// "OTP has expired".
func validateOTP(stored string, expiresAt *time.Time, code string) error {
	otp := auth.OTP{Code: stored}
	if expiresAt != nil {
		otp.ExpiresAt = *expiresAt
	}
	switch err := otp.Validate(code, time.Now()); {
	case errors.Is(err, auth.ErrOTPInvalid):
		return httpx.Validation("Invalid OTP")
	case errors.Is(err, auth.ErrOTPExpired):
		return httpx.Validation("OTP has expired")
	default:
		return err
	}
}
