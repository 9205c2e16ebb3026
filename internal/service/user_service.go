package service

import (
	"errors"
	"strconv"

	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type UserRepository interface {
	Insert(user *entity.User) error
	FindByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *DefaultUserService {
	return &DefaultUserService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// RegisterUser creates the user with the given username, or returns the
// pre-existing row when the username is already taken. The second return
// value reports whether a row was actually inserted.
//
// Registering a taken username is not an error: the uniqueness violation is
// the one storage failure this service recognizes, and it is converted into
// a lookup of the existing row.
func (u *DefaultUserService) RegisterUser(req *contract.RegisterUserRequest) (*contract.UserResponse, bool, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, false, apierror.FromValidationError(valerr)
	}

	user := &entity.User{
		Username:  req.Username,
		CreatedAt: utils.NowUTC(),
	}

	err := u.UserRepo.Insert(user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, ferr := u.UserRepo.FindByUsername(req.Username)
		if ferr != nil {
			log.Errorf("failed to fetch existing user: %v", ferr)
			return nil, false, apierror.InternalServerError
		}

		if existing == nil {
			// Row vanished between the rejected insert and the lookup.
			// Cannot happen on the single serialized connection.
			log.Errorf("duplicate username %q has no matching row", req.Username)
			return nil, false, apierror.InternalServerError
		}
		return toUserResponse(existing), false, nil
	}

	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, false, apierror.InternalServerError
	}
	return toUserResponse(user), true, nil
}

// GetUser fetches a user by its raw path parameter. A malformed id simply
// fails to match any row, so it reports not-found rather than a type error.
func (u *DefaultUserService) GetUser(rawID string) (*contract.UserResponse, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, apierror.NotFoundError
	}

	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
