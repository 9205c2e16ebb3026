package contract

type NoteResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsHidden  bool   `json:"is_hidden"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateNoteRequest carries the caller-suppliable fields of a new note.
// ID and CreatedAt are optional and defaulted server-side when absent;
// the owning user is never read from the body.
type CreateNoteRequest struct {
	ID        *int64 `json:"id" validate:"omitempty,gt=0"`
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"required,min=1,max=1000000"`
	IsHidden  *bool  `json:"is_hidden"`
	CreatedAt string `json:"created_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=1,max=1000000"`
	IsHidden *bool   `json:"is_hidden"`
}

// Empty reports whether the patch carries no fields at all.
func (r *UpdateNoteRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.IsHidden == nil
}

// ConfirmationResponse is the body of mutations that do not echo the row back.
type ConfirmationResponse struct {
	Message string `json:"message"`
}
