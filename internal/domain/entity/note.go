package entity

// Note rows are never physically erased: soft-deletion stamps DeletedAt
// and list queries filter on it. All timestamps are UTC epoch millis.
type Note struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"` // References: users(id), not enforced
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	IsHidden  bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt *int64
}

// Live reports whether the note has not been soft-deleted.
func (n *Note) Live() bool {
	return n.DeletedAt == nil
}
