// internal/users/auth.go

// Package users covers registration, login (password and phone OTP), tokens,
// profiles and favorites.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/otp"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// TokenConfig carries the JWT lifetimes, in hours.
type TokenConfig struct {
	AccessTokenTTL  int
	RefreshTokenTTL int
}

// AuthPayload is what every successful authentication returns.
type AuthPayload struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
}

func issueTokens(user *models.User, cfg TokenConfig) (AuthPayload, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Username, cfg.AccessTokenTTL)
	if err != nil {
		return AuthPayload{}, err
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID, cfg.RefreshTokenTTL)
	if err != nil {
		return AuthPayload{}, err
	}
	return AuthPayload{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    cfg.AccessTokenTTL * 3600,
	}, nil
}

type RegisterCommand struct {
	Username    string                 `json:"username" validate:"required,username"`
	Email       string                 `json:"email" validate:"required,email"`
	Phone       string                 `json:"phone" validate:"omitempty,phone"`
	Password    string                 `json:"password" validate:"required,strong_password"`
	ProfileData map[string]interface{} `json:"profile_data,omitempty"`
}

type RegisterHandler struct {
	users UserStore
	cfg   TokenConfig
}

func NewRegisterHandler(users UserStore, cfg TokenConfig) *RegisterHandler {
	return &RegisterHandler{users: users, cfg: cfg}
}

func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) results.Result[AuthPayload] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[AuthPayload](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	if _, err := h.users.GetByEmailOrUsername(ctx, cmd.Email, cmd.Username); err == nil {
		return results.Fail[AuthPayload](results.ErrTypeAlreadyExists, i18n.Tr(ctx, i18n.KeyAuthUserExists), nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	user := &models.User{
		Username:    cmd.Username,
		Email:       cmd.Email,
		Phone:       cmd.Phone,
		Status:      models.UserStatusActive,
		ProfileData: models.JSONB(cmd.ProfileData),
	}
	if err := user.SetPassword(cmd.Password); err != nil {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if err := h.users.Add(ctx, user); err != nil {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	payload, err := issueTokens(user, h.cfg)
	if err != nil {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	logrus.WithField("user_id", user.ID).Info("User registered")
	return results.OkMsg(payload, i18n.Tr(ctx, i18n.KeyAuthRegisterSuccess))
}

type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginHandler struct {
	users UserStore
	cfg   TokenConfig
}

func NewLoginHandler(users UserStore, cfg TokenConfig) *LoginHandler {
	return &LoginHandler{users: users, cfg: cfg}
}

func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) results.Result[AuthPayload] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[AuthPayload](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	user, err := h.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Wrong email and wrong password are indistinguishable.
			return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthInvalidCredentials), nil)
		}
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if user.Status != models.UserStatusActive {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthAccountSuspended), nil)
	}
	if err := user.CheckPassword(cmd.Password); err != nil {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthInvalidCredentials), nil)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := h.users.Update(ctx, user); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to stamp last login")
	}

	payload, err := issueTokens(user, h.cfg)
	if err != nil {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(payload, i18n.Tr(ctx, i18n.KeyAuthLoginSuccess))
}

type RefreshTokenCommand struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenHandler struct {
	users UserStore
	cfg   TokenConfig
}

func NewRefreshTokenHandler(users UserStore, cfg TokenConfig) *RefreshTokenHandler {
	return &RefreshTokenHandler{users: users, cfg: cfg}
}

func (h *RefreshTokenHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) results.Result[AuthPayload] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[AuthPayload](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	subject, err := utils.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthInvalidToken), nil)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthInvalidToken), nil)
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[AuthPayload](i18n.Tr(ctx, i18n.KeyUserNotFound))
		}
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if user.Status != models.UserStatusActive {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthAccountSuspended), nil)
	}

	payload, err := issueTokens(user, h.cfg)
	if err != nil {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(payload)
}

const (
	otpLength = 6
	otpTTL    = 5 * time.Minute
)

type RequestLoginCodeCommand struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// RequestLoginCodeHandler issues a numeric code into the TTL store. The code
// is dispatched via log only; wiring an SMS gateway replaces that one line.
type RequestLoginCodeHandler struct {
	users UserStore
	codes otp.Store
}

func NewRequestLoginCodeHandler(users UserStore, codes otp.Store) *RequestLoginCodeHandler {
	return &RequestLoginCodeHandler{users: users, codes: codes}
}

func (h *RequestLoginCodeHandler) Handle(ctx context.Context, cmd RequestLoginCodeCommand) results.Result[bool] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[bool](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	user, err := h.users.GetByPhone(ctx, cmd.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Unknown phones get the same answer as known ones.
			return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyAuthOTPSent))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if user.Status != models.UserStatusActive {
		return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyAuthOTPSent))
	}

	code, err := utils.GenerateOTP(otpLength)
	if err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	h.codes.Put(cmd.Phone, code, otpTTL)

	logrus.WithFields(logrus.Fields{
		"phone": cmd.Phone,
		"code":  code,
	}).Info("Login code issued")

	return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyAuthOTPSent))
}

type VerifyLoginCodeCommand struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code" validate:"required"`
}

type VerifyLoginCodeHandler struct {
	users UserStore
	codes otp.Store
	cfg   TokenConfig
}

func NewVerifyLoginCodeHandler(users UserStore, codes otp.Store, cfg TokenConfig) *VerifyLoginCodeHandler {
	return &VerifyLoginCodeHandler{users: users, codes: codes, cfg: cfg}
}

func (h *VerifyLoginCodeHandler) Handle(ctx context.Context, cmd VerifyLoginCodeCommand) results.Result[AuthPayload] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[AuthPayload](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	stored, ok := h.codes.Get(cmd.Phone)
	if !ok || stored != cmd.Code {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthOTPInvalid), nil)
	}

	user, err := h.users.GetByPhone(ctx, cmd.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[AuthPayload](i18n.Tr(ctx, i18n.KeyUserNotFound))
		}
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if user.Status != models.UserStatusActive {
		return results.Fail[AuthPayload](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyAuthAccountSuspended), nil)
	}

	// Consumed on success only; a failed attempt leaves the code usable
	// until its TTL runs out.
	h.codes.Delete(cmd.Phone)

	now := time.Now()
	user.LastLoginAt = &now
	if err := h.users.Update(ctx, user); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to stamp last login")
	}

	payload, err := issueTokens(user, h.cfg)
	if err != nil {
		return results.Internal[AuthPayload](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(payload, i18n.Tr(ctx, i18n.KeyAuthLoginSuccess))
}
