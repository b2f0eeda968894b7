// Package identity manages staff accounts: registration, login, email
// verification and password reset over one-time passcodes.
package identity

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the user_account table. The OTP fields are write-once: set on
// issuance, compared once, cleared on success.
type User struct {
	ID                 uuid.UUID  `db:"id"`
	Name               string     `db:"name"`
	Email              string     `db:"email"`
	PasswordHash       string     `db:"password_hash"`
	IsVerified         bool       `db:"is_verified"`
	VerifyOTP          string     `db:"verify_otp"`
	VerifyOTPExpiresAt *time.Time `db:"verify_otp_expires_at"`
	ResetOTP           string     `db:"reset_otp"`
	ResetOTPExpiresAt  *time.Time `db:"reset_otp_expires_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

// Profile is the identity projection returned to the SPA. Password and OTP
// state never leave the service.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"isVerified"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, IsVerified: u.IsVerified}
}
