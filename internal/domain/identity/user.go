package identity

import (
	"regexp"
	"strings"

	"github.com/loja/backend/internal/domain/shared"
)

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// User represents an operator account that can log in to the back office.
// The password is only ever held as a one-way hash.
type User struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
}

// NewUser creates a new user, hashing the password with hasher
func NewUser(name, email, password string, hasher PasswordHasher) (*User, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	email = shared.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
	}
	if err := user.applyPassword(password, hasher); err != nil {
		return nil, err
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// UpdateProfile changes the user's name and email
func (u *User) UpdateProfile(name, email string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	email = shared.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	u.Name = name
	u.Email = email
	u.Touch()
	return nil
}

// SetPassword replaces the stored hash (admin reset, no old password check)
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if err := u.applyPassword(password, hasher); err != nil {
		return err
	}
	u.Touch()
	return nil
}

// VerifyPassword reports whether password matches the stored hash
func (u *User) VerifyPassword(password string, hasher PasswordHasher) bool {
	return CheckCredential(password, u.PasswordHash, hasher)
}

func (u *User) applyPassword(password string, hasher PasswordHasher) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return shared.WrapDomainError("PASSWORD_HASH_ERROR", "Failed to hash password", err)
	}
	u.PasswordHash = hash
	return nil
}


func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	// bcrypt ignores everything past 72 bytes
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	if !hasLetter.MatchString(password) || !hasNumber.MatchString(password) {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !shared.IsValidEmail(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
