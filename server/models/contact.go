package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/Daskott/coastal-alert/utils"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrDuplicateContact      = errors.New("contact already exists")
	ErrContactMethodRequired = errors.New("at least one contact method (email or phone) is required")
)

// DuplicateContactError names the field that collided with another contact.
// It matches ErrDuplicateContact with errors.Is.
type DuplicateContactError struct {
	Field string
	Value string
}

func (e *DuplicateContactError) Error() string {
	if e.Field == "" {
		return "contact with this phone number or email already exists"
	}
	return fmt.Sprintf("contact with %s '%s' already exists", e.Field, e.Value)
}

func (e *DuplicateContactError) Is(target error) bool {
	return target == ErrDuplicateContact
}

type Contact struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null"`
	Phone     *string   `json:"phone" gorm:"uniqueIndex"`
	Email     *string   `json:"email" gorm:"uniqueIndex"`
	Region    *string   `json:"region"`
	UserID    *uint     `json:"user_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactParams holds the writable fields of a contact.
type ContactParams struct {
	Name   string `json:"name" validate:"required,max=255"`
	Phone  string `json:"phone" validate:"omitempty,max=32"`
	Email  string `json:"email" validate:"omitempty,email,max=255"`
	Region string `json:"region" validate:"omitempty,max=255"`
	UserID *uint  `json:"-"`
}

func (params ContactParams) apply(contact *Contact) {
	contact.Name = params.Name
	contact.Phone = utils.NilIfEmpty(params.Phone)
	contact.Email = utils.NilIfEmpty(params.Email)
	contact.Region = utils.NilIfEmpty(params.Region)
	if params.UserID != nil {
		contact.UserID = params.UserID
	}
}

// HasPhone and HasEmail report which notification channels the contact can receive.
func (contact *Contact) HasPhone() bool { return contact.Phone != nil && *contact.Phone != "" }
func (contact *Contact) HasEmail() bool { return contact.Email != nil && *contact.Email != "" }

func (contact *Contact) RegionName() string {
	return utils.ValueOrEmpty(contact.Region)
}

func CreateContact(params ContactParams) (*Contact, error) {
	contact := Contact{}
	params.apply(&contact)

	err := checkContactConflicts(&contact, 0)
	if err != nil {
		return nil, err
	}

	err = db.Create(&contact).Error
	if isUniqueViolation(err) {
		return nil, &DuplicateContactError{}
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create contact")
	}

	return &contact, nil
}

// FetchContacts returns every contact, newest first.
func FetchContacts() ([]Contact, error) {
	contacts := []Contact{}

	err := db.Scopes(newestFirst).Find(&contacts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "fetch contacts")
	}

	return contacts, nil
}

func FindContact(id interface{}) (*Contact, error) {
	contact := Contact{}
	err := db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func UpdateContact(id interface{}, params ContactParams) (*Contact, error) {
	contact, err := FindContact(id)
	if err != nil {
		return nil, err
	}

	params.apply(contact)

	err = checkContactConflicts(contact, contact.ID)
	if err != nil {
		return nil, err
	}

	// Select the columns explicitly so cleared phone/email/region are written back as NULL
	err = db.Model(contact).Select("name", "phone", "email", "region", "user_id", "updated_at").Updates(contact).Error
	if isUniqueViolation(err) {
		return nil, &DuplicateContactError{}
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "update contact")
	}

	return contact, nil
}

func DeleteContact(id interface{}) error {
	res := db.Delete(&Contact{}, "id = ?", id)
	if res.Error != nil {
		return pkgerrors.Wrap(res.Error, "delete contact")
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

// checkContactConflicts is a friendlier pre-check of the unique indexes on
// phone & email, ignoring the contact with id=excludeID.
func checkContactConflicts(contact *Contact, excludeID uint) error {
	if !contact.HasPhone() && !contact.HasEmail() {
		return ErrContactMethodRequired
	}

	if contact.HasEmail() {
		taken, err := contactFieldTaken("email", *contact.Email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return &DuplicateContactError{Field: "email", Value: *contact.Email}
		}
	}

	if contact.HasPhone() {
		taken, err := contactFieldTaken("phone", *contact.Phone, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return &DuplicateContactError{Field: "phone number", Value: *contact.Phone}
		}
	}

	return nil
}

func contactFieldTaken(field, value string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&Contact{}).
		Where(fmt.Sprintf("%s = ? AND id <> ?", field), value, excludeID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.Wrapf(err, "check %s", field)
	}

	return count > 0, nil
}
