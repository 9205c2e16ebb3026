package repository

import (
	"errors"

	"notedeck/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// FindVisibleByOwner returns the owner's live notes ordered by creation time.
func (d *DefaultNoteRepository) FindVisibleByOwner(ownerID int64) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.
		Where("user_id = ? AND deleted_at IS NULL", ownerID).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindVisibleByID(ownerID, noteID int64) (*entity.Note, error) {
	var note entity.Note
	err := d.db.
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", noteID, ownerID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Insert(note *entity.Note) error {
	return d.db.Create(note).Error
}

// UpdateFields applies the given column values to a single note, scoped by
// ownership and liveness in the same statement. The compound predicate is
// what makes the check and the mutation atomic: a note that does not exist,
// belongs to someone else, or is already soft-deleted simply matches zero
// rows, and the caller cannot tell which.
func (d *DefaultNoteRepository) UpdateFields(ownerID, noteID int64, fields map[string]any) (int64, error) {
	res := d.db.
		Model(&entity.Note{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", noteID, ownerID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// SoftDelete stamps deleted_at, scoped by ownership only. Unlike UpdateFields
// it does not require the row to be live: re-deleting an already-deleted note
// re-stamps the timestamp and still counts as a match.
func (d *DefaultNoteRepository) SoftDelete(ownerID, noteID, deletedAt int64) (int64, error) {
	res := d.db.
		Model(&entity.Note{}).
		Where("id = ? AND user_id = ?", noteID, ownerID).
		Update("deleted_at", deletedAt)
	return res.RowsAffected, res.Error
}
