package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// OTPTTL is how long a one-time passcode stays usable after issue.
const OTPTTL = 24 * time.Hour

var (
	// ErrOTPInvalid reports an empty or mismatched passcode.
	ErrOTPInvalid = errors.New("auth: otp invalid")
	// ErrOTPExpired reports a matching passcode past its expiry.
	ErrOTPExpired = errors.New("auth: otp expired")
)

// OTP is a stored one-time passcode with its expiry instant. The zero value
// means no passcode is outstanding.
type OTP struct {
	Code      string
	ExpiresAt time.Time
}

// IssueOTP generates a fresh 6-digit passcode valid for OTPTTL from now.
func IssueOTP(now time.Time) (OTP, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return OTP{}, fmt.Errorf("generating otp: %w", err)
	}
	return OTP{
		Code:      fmt.Sprintf("%06d", n.Int64()+100000),
		ExpiresAt: now.Add(OTPTTL),
	}, nil
}

// Validate checks a submitted passcode against the stored one. Mismatch is
// checked before expiry: a wrong code always reads "invalid", while a
// matching but stale code always reads "expired".
func (o OTP) Validate(code string, now time.Time) error {
	if o.Code == "" || code == "" || o.Code != code {
		return ErrOTPInvalid
	}
	if !now.Before(o.ExpiresAt) {
		return ErrOTPExpired
	}
	return nil
}
