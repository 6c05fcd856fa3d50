/*
Package handler provides the HTTP handlers and routing of the user registration service.
*/
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"userreg/internal/app/user"
	"userreg/internal/pkg/errs"
	"userreg/internal/pkg/logx"
	"userreg/internal/pkg/req"
	"userreg/internal/pkg/resp"
)

// RegisterInput is the JSON body of POST /register. Pointers distinguish missing fields from
// empty strings.
type RegisterInput struct {
	FullName       *string `json:"full_name"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
}

// validate requires every field and non-blank account fields. An empty profile_picture is allowed.
func (in RegisterInput) validate() bool {
	if in.FullName == nil || in.Email == nil || in.Password == nil || in.Phone == nil || in.ProfilePicture == nil {
		return false
	}
	for _, v := range []string{*in.FullName, *in.Email, *in.Password, *in.Phone} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// HandleRegister creates a user and its profile attribute and returns the merged record.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !input.validate() {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		record, err := deps.Users.Register(r.Context(), user.RegisterInput{
			FullName:       *input.FullName,
			Email:          *input.Email,
			Password:       *input.Password,
			Phone:          *input.Phone,
			ProfilePicture: *input.ProfilePicture,
		})
		if err != nil {
			if errors.Is(err, user.ErrPartialWrite) && record != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrProfileNotSaved), map[string]int64{"user_id": record.UserID})
				return
			}

			logx.FromContext(r.Context()).Warn().Err(err).Msg("Registration failed")
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		resp.RespondSuccess(w, r, record)
	}
}

// HandleGetUser returns the merged record of the user named by the user_id path parameter.
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		record, err := deps.Users.Get(r.Context(), id)
		if err != nil {
			if !errors.Is(err, user.ErrNotFound) {
				logx.FromContext(r.Context()).Warn().Err(err).Int64("user_id", id).Msg("User lookup failed")
			}
			resp.RespondError(w, r, toCustomError(err))
			return
		}

		resp.RespondSuccess(w, r, record)
	}
}

// toCustomError maps store sentinels to client error codes. Anything unrecognized becomes ErrUnknown.
func toCustomError(err error) *errs.CustomError {
	switch {
	case errors.Is(err, user.ErrPartialWrite):
		return errs.NewError(errs.ErrProfileNotSaved)
	case errors.Is(err, user.ErrEmailTaken):
		return errs.NewError(errs.ErrEmailTaken)
	case errors.Is(err, user.ErrPhoneTaken):
		return errs.NewError(errs.ErrPhoneTaken)
	case errors.Is(err, user.ErrConflict):
		return errs.NewError(errs.ErrUserAlreadyExists)
	case errors.Is(err, user.ErrNotFound):
		return errs.NewError(errs.ErrUserNotFound)
	case errors.Is(err, user.ErrInvalidInput):
		return errs.NewError(errs.ErrInvalidParams)
	case errors.Is(err, user.ErrStoreUnavailable):
		return errs.NewError(errs.ErrStoreUnavailable)
	default:
		return errs.NewError(errs.ErrUnknown, err)
	}
}
