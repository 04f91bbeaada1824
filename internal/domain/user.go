package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"_id"`
	FirstName    string     `gorm:"size:64;not null" json:"firstName"`
	LastName     string     `gorm:"size:64;not null" json:"lastName"`
	MobileNumber string     `gorm:"size:10;not null" json:"mobileNumber"`
	Email        string     `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Role         string     `gorm:"size:16;not null;default:user" json:"role"` // "user"/"admin"
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	List() ([]User, error)
	ListPage(offset, limit int, q string, withDeleted bool) ([]User, int64, error)
	SoftDelete(id string) (bool, error)
}
