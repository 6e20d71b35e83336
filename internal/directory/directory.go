// Package directory resolves registered accounts for display joins and sign-in.
// The queue engine only reads from it.
package directory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tutoring_queue/internal/models"
)

var (
	ErrEmailExists        = errors.New("directory: email already registered")
	ErrInvalidCredentials = errors.New("directory: invalid email or password")
	ErrInvalidRole        = errors.New("directory: invalid role")
)

type Directory struct {
	mu      sync.RWMutex
	byID    map[string]*models.Account
	byEmail map[string]string
}

func New() *Directory {
	return &Directory{
		byID:    make(map[string]*models.Account),
		byEmail: make(map[string]string),
	}
}

// HashPassword is used for seed accounts and registrations alike.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Load adds accounts whose passwords are already hashed.
func (d *Directory) Load(accounts ...models.Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, a := range accounts {
		a := a
		a.Email = normalizeEmail(a.Email)
		if !a.Role.Valid() {
			return fmt.Errorf("account %s: %w", a.ID, ErrInvalidRole)
		}
		if _, taken := d.byEmail[a.Email]; taken {
			return fmt.Errorf("account %s: %w", a.ID, ErrEmailExists)
		}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		d.byID[a.ID] = &a
		d.byEmail[a.Email] = a.ID
	}
	return nil
}

// LoadFromDB reads every row of the accounts table.
func (d *Directory) LoadFromDB(db *gorm.DB) (int, error) {
	var accounts []models.Account
	if err := db.Find(&accounts).Error; err != nil {
		return 0, fmt.Errorf("load accounts: %w", err)
	}
	if err := d.Load(accounts...); err != nil {
		return 0, err
	}
	return len(accounts), nil
}

func (d *Directory) Lookup(id string) (models.Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.byID[id]
	if !ok {
		return models.Account{}, false
	}
	return *a, true
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}

// Authenticate checks a password against the stored bcrypt hash.
// Unknown emails and wrong passwords return the same error.
func (d *Directory) Authenticate(email, password string) (models.Account, error) {
	d.mu.RLock()
	id, ok := d.byEmail[normalizeEmail(email)]
	var a models.Account
	if ok {
		a = *d.byID[id]
	}
	d.mu.RUnlock()

	if !ok {
		return models.Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func (d *Directory) Register(name, email, password string, role models.Role) (models.Account, error) {
	if !role.Valid() {
		return models.Account{}, ErrInvalidRole
	}
	hash, err := HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	a := models.Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		Role:         role,
		PasswordHash: hash,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, taken := d.byEmail[a.Email]; taken {
		return models.Account{}, ErrEmailExists
	}
	d.byID[a.ID] = &a
	d.byEmail[a.Email] = a.ID
	return a, nil
}

// Remove drops an account. It reports false when id is unknown.
func (d *Directory) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.byID[id]
	if !ok {
		return false
	}
	delete(d.byEmail, a.Email)
	delete(d.byID, id)
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
