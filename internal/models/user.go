// internal/models/user.go
package models

import (
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name              string         `json:"name" gorm:"size:100;not null"`
	Email             string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash      string         `json:"-" gorm:"size:255;not null"`
	Role              Role           `json:"role" gorm:"type:varchar(20);not null;index"`
	Age               int            `json:"age" gorm:"not null"`
	Skills            pq.StringArray `json:"skills" gorm:"type:text[]"`
	Resume            string         `json:"resume,omitempty" gorm:"size:500"`
	Education         string         `json:"education,omitempty" gorm:"size:255"`
	Experience        int            `json:"experience" gorm:"default:0"`
	PreferredLocation string         `json:"preferred_location,omitempty" gorm:"size:100"`
	ExpectedSalary    string         `json:"expected_salary,omitempty" gorm:"size:50"`
	Availability      Availability   `json:"availability" gorm:"type:varchar(20);default:'flexible'"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
