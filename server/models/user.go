package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Daskott/coastal-alert/server/auth"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrDuplicateUser = errors.New("user with the given email already exists")

var allFieldsExceptPassword = []string{"id",
	"name",
	"email",
	"phone",
	"region",
	"is_active",
	"is_admin",
	"created_at",
	"updated_at",
}

type User struct {
	BaseModel
	Name      string    `json:"name" validate:"required,max=255"`
	Email     string    `json:"email" validate:"required,email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"password,omitempty" validate:"required,password" gorm:"column:hashed_password;not null"`
	Phone     string    `json:"phone" validate:"omitempty,max=32"`
	Region    string    `json:"region" validate:"omitempty,max=255"`
	IsActive  bool      `json:"is_active" gorm:"not null"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null"`
	Contacts  []Contact `json:"contacts,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	UpdatedAt time.Time `json:"updated_at"`
}

func CreateUser(user *User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	_, err := FindUserBy("email", user.Email)
	if err == nil {
		return ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash
	user.IsActive = true

	err = db.Create(user).Error
	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}

	return pkgerrors.Wrap(err, "create user")
}

func FindUserBy(field string, value interface{}) (*User, error) {
	user := User{}
	err := db.Select(allFieldsExceptPassword).First(&user, fmt.Sprintf("%v = ?", field), value).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func FindUserPassword(email string) (string, error) {
	user := &User{}
	err := db.Select("hashed_password").First(user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error

	if err != nil {
		return "", err
	}
	return user.Password, nil
}

func AtLeastOneUserExists() (bool, error) {
	err := db.Select("id").First(&User{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
