package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents any account in the system. Patients, doctors and admins
// share one table; doctor-only attributes (specialization) are nullable.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID         int       `gorm:"not null;index" json:"role_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialization string    `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor reports whether the account has the doctor role.
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}

// IsPatient reports whether the account has the patient role.
func (u *User) IsPatient() bool {
	return u.RoleID == RoleIDPatient
}
