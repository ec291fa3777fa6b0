// internal/users/profile.go
package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type GetProfileQuery struct {
	UserID uuid.UUID `json:"-"`
}

type GetProfileHandler struct {
	users UserStore
}

func NewGetProfileHandler(users UserStore) *GetProfileHandler {
	return &GetProfileHandler{users: users}
}

func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) results.Result[*models.User] {
	user, err := h.users.GetByID(ctx, q.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.User](i18n.Tr(ctx, i18n.KeyUserNotFound))
		}
		return results.Internal[*models.User](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(user)
}

type UpdateProfileCommand struct {
	UserID      uuid.UUID              `json:"-"`
	Username    *string                `json:"username" validate:"omitempty,username"`
	Phone       *string                `json:"phone" validate:"omitempty,phone"`
	Password    *string                `json:"password" validate:"omitempty,strong_password"`
	ProfileData map[string]interface{} `json:"profile_data,omitempty"`
}

type UpdateProfileHandler struct {
	users UserStore
}

func NewUpdateProfileHandler(users UserStore) *UpdateProfileHandler {
	return &UpdateProfileHandler{users: users}
}

func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) results.Result[*models.User] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.User](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	user, err := h.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.User](i18n.Tr(ctx, i18n.KeyUserNotFound))
		}
		return results.Internal[*models.User](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if cmd.Username != nil {
		user.Username = *cmd.Username
	}
	if cmd.Phone != nil {
		user.Phone = *cmd.Phone
	}
	if cmd.Password != nil {
		if err := user.SetPassword(*cmd.Password); err != nil {
			return results.Internal[*models.User](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}
	if cmd.ProfileData != nil {
		if user.ProfileData == nil {
			user.ProfileData = make(models.JSONB)
		}
		for k, v := range cmd.ProfileData {
			user.ProfileData[k] = v
		}
	}

	if err := h.users.Update(ctx, user); err != nil {
		return results.Internal[*models.User](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(user, i18n.Tr(ctx, i18n.KeyUserProfileUpdated))
}
