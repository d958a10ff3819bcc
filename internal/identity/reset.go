package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

var (
	// ErrResetNotStarted indicates OTP verification without a prior request.
	ErrResetNotStarted = errors.New("identity: password reset not started")
	// ErrInvalidOTP indicates the submitted code does not match.
	ErrInvalidOTP = errors.New("identity: invalid OTP")
	// ErrOTPNotVerified indicates a reset attempt before OTP verification.
	ErrOTPNotVerified = errors.New("identity: OTP not verified")
	// ErrPasswordTooShort indicates the new password misses the minimum length.
	ErrPasswordTooShort = errors.New("identity: password too short")
	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("identity: passwords do not match")
)

type resetStep int

const (
	resetStepOTP resetStep = iota + 1
	resetStepPassword
)

type resetState struct {
	email string
	step  resetStep
}

// ResetFlow drives the demo forgot-password sequence: email, OTP, new password.
// The OTP is a fixed demo code and no credential is actually changed; every
// failure is reported as a notice and never blocks further attempts.
type ResetFlow struct {
	mu      sync.Mutex
	flows   map[string]*resetState
	otp     string
	minLen  int
	email   notify.EmailSender
	notices *notify.Center
	logger  *logging.Logger
}

// NewResetFlow creates the password reset flow.
func NewResetFlow(otp string, minPasswordLength int, email notify.EmailSender, notices *notify.Center, logger *logging.Logger) *ResetFlow {
	if otp == "" {
		otp = "123456"
	}
	if minPasswordLength <= 0 {
		minPasswordLength = 6
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ResetFlow{
		flows:   make(map[string]*resetState),
		otp:     otp,
		minLen:  minPasswordLength,
		email:   email,
		notices: notices,
		logger:  logger,
	}
}

// RequestOTP starts a reset flow for the email and delivers the demo code.
func (f *ResetFlow) RequestOTP(ctx context.Context, sessionID, email string) error {
	f.mu.Lock()
	f.flows[sessionID] = &resetState{email: email, step: resetStepOTP}
	f.mu.Unlock()

	if f.email != nil {
		msg := notify.EmailMessage{
			To:      email,
			Subject: "Your Parents Luxuria password reset code",
			Body:    fmt.Sprintf("Use OTP %s to reset your password. The code expires with your session.", f.otp),
		}
		if err := f.email.Send(ctx, msg); err != nil {
			// Delivery trouble is logged but the demo flow keeps going.
			f.logger.Error("reset OTP email failed", "error", err, "email", email)
		}
	}

	if f.notices != nil {
		f.notices.Success(sessionID, fmt.Sprintf("OTP sent to %s", email))
	}
	f.logger.Info("password reset requested", "session_id", sessionID, "email", email)
	return nil
}

// VerifyOTP checks the submitted code against the demo OTP.
func (f *ResetFlow) VerifyOTP(sessionID, otp string) error {
	f.mu.Lock()
	state, ok := f.flows[sessionID]
	f.mu.Unlock()

	if !ok || state.step != resetStepOTP {
		return ErrResetNotStarted
	}
	if otp != f.otp {
		if f.notices != nil {
			f.notices.Error(sessionID, "Invalid OTP. Please try again.")
		}
		return ErrInvalidOTP
	}

	f.mu.Lock()
	state.step = resetStepPassword
	f.mu.Unlock()

	if f.notices != nil {
		f.notices.Success(sessionID, "OTP verified successfully!")
	}
	return nil
}

// ResetPassword completes the flow. The password is validated but not stored
// anywhere; the demo provider ignores credentials entirely.
func (f *ResetFlow) ResetPassword(sessionID, password, confirm string) error {
	f.mu.Lock()
	state, ok := f.flows[sessionID]
	f.mu.Unlock()

	if !ok {
		return ErrResetNotStarted
	}
	if state.step != resetStepPassword {
		return ErrOTPNotVerified
	}
	if len(password) < f.minLen {
		if f.notices != nil {
			f.notices.Error(sessionID, fmt.Sprintf("Password must be at least %d characters.", f.minLen))
		}
		return ErrPasswordTooShort
	}
	if password != confirm {
		if f.notices != nil {
			f.notices.Error(sessionID, "Passwords do not match.")
		}
		return ErrPasswordMismatch
	}

	f.mu.Lock()
	delete(f.flows, sessionID)
	f.mu.Unlock()

	if f.notices != nil {
		f.notices.Success(sessionID, "Your password has been reset successfully.")
	}
	f.logger.Info("password reset completed", "session_id", sessionID, "email", state.email)
	return nil
}
