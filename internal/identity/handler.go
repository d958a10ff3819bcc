package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parentsluxuria/wellness-platform/internal/observability/metrics"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// SessionNavigator lets the auth endpoints move the session's navigation state
// without this package depending on the navigation package.
type SessionNavigator interface {
	// RedirectAfterLogin moves the session to its post-login route and
	// returns that route.
	RedirectAfterLogin(sessionID string, role Role) string
	// ResetAfterLogout returns the session's navigation to the landing state
	// and clears any selection context.
	ResetAfterLogout(sessionID string)
}

// Handler exposes session and auth endpoints.
type Handler struct {
	manager *Manager
	reset   *ResetFlow
	nav     SessionNavigator
	metrics *metrics.AppMetrics
	logger  *logging.Logger
}

// NewHandler creates the auth handler.
func NewHandler(manager *Manager, reset *ResetFlow, nav SessionNavigator, m *metrics.AppMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		manager: manager,
		reset:   reset,
		nav:     nav,
		metrics: m,
		logger:  logger,
	}
}

// StartSessionResponse is returned when an anonymous session is created.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// StartSession handles POST /session/start.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	sess, token, err := h.manager.StartSession(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", "error", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, StartSessionResponse{
		SessionID: sess.ID,
		Token:     token,
	})
}

// LoginRequest carries credentials. The demo provider ignores the password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Identity *Identity `json:"identity"`
	Redirect string    `json:"redirect"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	id, err := h.manager.Login(r.Context(), sessionID, req.Email, req.Password)
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	redirect := ""
	if h.nav != nil {
		redirect = h.nav.RedirectAfterLogin(sessionID, id.Role)
	}
	h.metrics.ObserveLogin(string(id.Role))

	writeJSON(w, http.StatusOK, AuthResponse{Identity: id, Redirect: redirect})
}

// RegisterRequest carries a self-registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" {
		http.Error(w, "name and email are required", http.StatusBadRequest)
		return
	}

	id, err := h.manager.Register(r.Context(), sessionID, req.Name, req.Email, req.Password, req.Role)
	if errors.Is(err, ErrInvalidRole) {
		http.Error(w, "role must be parent or partner", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	redirect := ""
	if h.nav != nil {
		redirect = h.nav.RedirectAfterLogin(sessionID, id.Role)
	}
	h.metrics.ObserveLogin(string(id.Role))

	writeJSON(w, http.StatusCreated, AuthResponse{Identity: id, Redirect: redirect})
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	if err := h.manager.Logout(r.Context(), sessionID); err != nil {
		h.respondSessionError(w, err)
		return
	}
	if h.nav != nil {
		h.nav.ResetAfterLogout(sessionID)
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	id, err := h.manager.Identity(r.Context(), sessionID)
	if errors.Is(err, ErrNotAuthenticated) {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.respondSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, id)
}

// ForgotPasswordRequest starts the reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	if err := h.reset.RequestOTP(r.Context(), sessionID, req.Email); err != nil {
		h.logger.Error("failed to request OTP", "error", err)
		http.Error(w, "failed to send OTP", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// VerifyOTPRequest carries the submitted code.
type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// VerifyOTP handles POST /auth/verify-otp.
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch err := h.reset.VerifyOTP(sessionID, req.OTP); {
	case errors.Is(err, ErrResetNotStarted):
		http.Error(w, "no reset in progress", http.StatusConflict)
	case errors.Is(err, ErrInvalidOTP):
		http.Error(w, "invalid OTP", http.StatusBadRequest)
	case err != nil:
		http.Error(w, "verification failed", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// ResetPasswordRequest completes the reset flow.
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPassword handles POST /auth/reset-password.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch err := h.reset.ResetPassword(sessionID, req.Password, req.ConfirmPassword); {
	case errors.Is(err, ErrResetNotStarted), errors.Is(err, ErrOTPNotVerified):
		http.Error(w, "OTP verification required first", http.StatusConflict)
	case errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrPasswordMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		http.Error(w, "reset failed", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	h.logger.Error("session operation failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
