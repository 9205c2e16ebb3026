package handler

import (
	"net/http"

	"notedeck/internal/contract"
	"notedeck/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	RegisterUser(req *contract.RegisterUserRequest) (*contract.UserResponse, bool, apierror.ErrorResponse)
	GetUser(rawID string) (*contract.UserResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

// RegisterUser answers 201 with the fresh row, or 200 with the pre-existing
// row when the username is already registered.
func (u *DefaultUserRoute) RegisterUser(c echo.Context) error {
	var req contract.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, created, apierr := u.UserService.RegisterUser(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if created {
		return c.JSON(http.StatusCreated, user)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	user, apierr := u.UserService.GetUser(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := contract.FetchUserResponse{Status: "ok", User: user}
	return c.JSON(http.StatusOK, &resp)
}
