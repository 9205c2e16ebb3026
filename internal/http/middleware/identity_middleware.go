package middleware

import (
	"net/http"
	"strconv"

	"notedeck/internal/domain/entity"
	"notedeck/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// HeaderUserID carries the acting user id on every note request.
const HeaderUserID = "X-User-ID"

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
}

type IdentityMiddlewareConfig struct {
	UserRepo UserRepository
}

// NewIdentityMiddleware resolves the caller identity before any note handler
// runs. The header value is not just parsed but verified against the user
// directory, so a non-numeric or unknown id is an explicit not-found at the
// boundary instead of an operation silently scoped to nobody.
func NewIdentityMiddleware(cfg *IdentityMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderUserID)
			if raw == "" {
				return c.JSON(http.StatusBadRequest, apierror.MissingIdentityError)
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return c.JSON(http.StatusNotFound, apierror.UnknownUserError)
			}

			user, err := cfg.UserRepo.FindByID(id)
			if err != nil {
				log.Errorf("failed to resolve caller identity: %v", err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				return c.JSON(http.StatusNotFound, apierror.UnknownUserError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
