package service

import (
	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"
	"notedeck/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindVisibleByOwner(ownerID int64) ([]*entity.Note, error)
	FindVisibleByID(ownerID, noteID int64) (*entity.Note, error)
	Insert(note *entity.Note) error
	UpdateFields(ownerID, noteID int64, fields map[string]any) (int64, error)
	SoftDelete(ownerID, noteID, deletedAt int64) (int64, error)
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		Validate: validate,
	}
}

// GetVisibleNotes returns the actor's live notes, oldest first. An actor
// with no notes gets an empty slice, never an error.
func (n *DefaultNoteService) GetVisibleNotes(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindVisibleByOwner(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func (n *DefaultNoteService) GetNoteByID(actor *entity.User, noteID int64) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindVisibleByID(actor.ID, noteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}
	return toNoteResponse(note), nil
}

// CreateNote inserts a note owned by the actor. The id and created_at may
// be caller-supplied; absent values default to a snowflake id and the
// current time. updated_at always starts equal to created_at.
//
// An id collision is a plain primary-key violation and surfaces as an
// infrastructure error, ids are not scoped per user.
func (n *DefaultNoteService) CreateNote(actor *entity.User, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	createdAt := utils.NowUTC()
	if req.CreatedAt != "" {
		parsed, err := utils.ParseTimestamp(req.CreatedAt)
		if err != nil {
			// The datetime tag already gates the format; keep the check
			// anyway so a tag change cannot corrupt stored timestamps.
			serr := apierror.NewStructured(400)
			serr.Add("created_at", "Value must be an RFC3339 timestamp")
			return nil, serr
		}
		createdAt = parsed
	}

	id := uid.Generate()
	if req.ID != nil {
		id = *req.ID
	}

	var hidden bool
	if req.IsHidden != nil {
		hidden = *req.IsHidden
	}

	note := &entity.Note{
		ID:        id,
		UserID:    actor.ID,
		Title:     req.Title,
		Content:   req.Content,
		IsHidden:  hidden,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := n.NoteRepo.Insert(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// UpdateNote patches only the supplied fields of a live note the actor owns,
// always restamping updated_at. Ownership and liveness are part of the
// update predicate itself, so there is no separate existence check to race
// against: zero matched rows collapses not-exists, not-owned and
// already-deleted into a single not-found answer.
func (n *DefaultNoteService) UpdateNote(actor *entity.User, noteID int64, req *contract.UpdateNoteRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if req.Empty() {
		return apierror.EmptyPatchError
	}

	if valerr := n.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	fields := map[string]any{
		"updated_at": utils.NowUTC(),
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.IsHidden != nil {
		fields["is_hidden"] = *req.IsHidden
	}

	affected, err := n.NoteRepo.UpdateFields(actor.ID, noteID, fields)
	if err != nil {
		log.Errorf("failed to update note: %v", err)
		return apierror.InternalServerError
	}

	if affected == 0 {
		return apierror.NotFoundError
	}
	return nil
}

// DeleteNote soft-deletes an owned note. Deleting an already-deleted note
// re-stamps deleted_at and still succeeds; only a nonexistent or foreign
// note reports not-found.
func (n *DefaultNoteService) DeleteNote(actor *entity.User, noteID int64) apierror.ErrorResponse {
	affected, err := n.NoteRepo.SoftDelete(actor.ID, noteID, utils.NowUTC())
	if err != nil {
		log.Errorf("failed to delete note: %v", err)
		return apierror.InternalServerError
	}

	if affected == 0 {
		return apierror.NotFoundError
	}
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		IsHidden:  note.IsHidden,
		UserID:    note.UserID,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
		UpdatedAt: utils.FormatEpoch(note.UpdatedAt),
	}
}
