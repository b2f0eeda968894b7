package identity

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heartwise/heartwise/internal/platform/auth"
	"github.com/heartwise/heartwise/internal/platform/httpx"
)

type Handler struct {
	svc    *Service
	secure bool // Secure cookie attribute, on in production
}

func NewHandler(svc *Service, secureCookies bool) *Handler {
	return &Handler{svc: svc, secure: secureCookies}
}

// RegisterRoutes mounts the auth endpoints. Only the verification and
// profile endpoints sit behind the session middleware; everything else must
// be reachable without a session.
func (h *Handler) RegisterRoutes(g *echo.Group, session echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/resetOTP", h.SendResetOTP)
	g.POST("/resetPassword", h.ResetPassword)

	g.POST("/verify", h.SendVerifyOTP, session)
	g.POST("/verifyEmail", h.VerifyEmail, session)
	g.POST("/authenticated", h.Authenticated, session)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return httpx.Validation("Please fill all the fields")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return httpx.Validation("Please fill all the fields")
	}

	_, token, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, h.svc.tokens.TTL(), h.secure)
	return httpx.OK(c, http.StatusCreated, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return httpx.Validation("Email and Password are required")
	}
	if req.Email == "" || req.Password == "" {
		return httpx.Validation("Email and Password are required")
	}

	_, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, h.svc.tokens.TTL(), h.secure)
	return httpx.OK(c, http.StatusOK, "User signed in")
}

func (h *Handler) Logout(c echo.Context) error {
	auth.ClearSessionCookie(c, h.secure)
	return httpx.OK(c, http.StatusOK, "You've been logged out")
}

func (h *Handler) SendVerifyOTP(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	sent, err := h.svc.SendVerifyOTP(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if !sent {
		return httpx.OK(c, http.StatusOK, "Account is already verified.")
	}
	return httpx.OK(c, http.StatusOK, "Verification OTP Sent")
}

type verifyEmailRequest struct {
	OTP string `json:"otp"`
}

func (h *Handler) VerifyEmail(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil || req.OTP == "" {
		return httpx.Validation("Missing details.")
	}

	if err := h.svc.VerifyEmail(c.Request().Context(), userID, req.OTP); err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, "Account has been verified")
}

type authenticatedResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
}

func (h *Handler) Authenticated(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.svc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authenticatedResponse{Success: true, User: profile})
}

type resetOTPRequest struct {
	Email string `json:"email"`
}

func (h *Handler) SendResetOTP(c echo.Context) error {
	var req resetOTPRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return httpx.Validation("Email is required")
	}

	if err := h.svc.SendResetOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, "Reset Password OTP Sent")
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return httpx.Validation("Missing required information")
	}
	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return httpx.Validation("Missing required information")
	}

	if err := h.svc.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, "Password has been reset")
}

// sessionUserID parses the user id set by the session middleware.
func sessionUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		return uuid.Nil, httpx.Unauthorized("Invalid authentication token.")
	}
	return id, nil
}
