package entity

// User is the identity record that all note ownership is scoped to.
// Usernames are case-sensitive and unique across the platform.
type User struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
}
