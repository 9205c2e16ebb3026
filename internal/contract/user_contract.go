package contract

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=80"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// FetchUserResponse wraps a single-user lookup.
type FetchUserResponse struct {
	Status string        `json:"status"`
	User   *UserResponse `json:"user"`
}
