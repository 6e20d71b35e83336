package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/directory"
	"tutoring_queue/internal/models"
)

// SeedAccount carries a plaintext password that is hashed on load.
type SeedAccount struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Email    string      `yaml:"email"`
	Role     models.Role `yaml:"role"`
	Password string      `yaml:"password"`
}

// Seed is the startup data for one day's queues.
type Seed struct {
	Accounts []SeedAccount    `yaml:"accounts"`
	Services []models.Service `yaml:"services"`
}

func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return &seed, nil
}

// Apply hashes seed passwords into the directory and registers the services.
// Accounts are skipped when the directory already came from the database.
func (s *Seed) Apply(dir *directory.Directory, cat *catalog.Catalog, withAccounts bool) error {
	if withAccounts {
		accounts := make([]models.Account, 0, len(s.Accounts))
		for _, a := range s.Accounts {
			hash, err := directory.HashPassword(a.Password)
			if err != nil {
				return fmt.Errorf("seed account %s: %w", a.Email, err)
			}
			accounts = append(accounts, models.Account{
				ID:           a.ID,
				Name:         a.Name,
				Email:        a.Email,
				Role:         a.Role,
				PasswordHash: hash,
			})
		}
		if err := dir.Load(accounts...); err != nil {
			return err
		}
	}
	return cat.Load(s.Services...)
}
