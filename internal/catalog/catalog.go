// Package catalog owns the set of offerable tutoring services.
// Services are created, edited and opened/closed by admins; they are never deleted.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tutoring_queue/internal/models"
)

var (
	ErrServiceNotFound = errors.New("catalog: service not found")
	ErrInvalidService  = errors.New("catalog: invalid service")
)

const defaultIcon = "📚"

// ServiceInput is the data an admin submits when creating a service.
type ServiceInput struct {
	Name             string               `json:"name" binding:"required"`
	Description      string               `json:"description" binding:"required"`
	Category         string               `json:"category" binding:"required"`
	ExpectedDuration int                  `json:"expectedDuration" binding:"required"`
	PriorityLevel    models.PriorityLevel `json:"priorityLevel"`
	Icon             string               `json:"icon"`
}

// ServicePatch carries only the fields an update should change.
type ServicePatch struct {
	Name             *string               `json:"name"`
	Description      *string               `json:"description"`
	Category         *string               `json:"category"`
	ExpectedDuration *int                  `json:"expectedDuration"`
	PriorityLevel    *models.PriorityLevel `json:"priorityLevel"`
	Icon             *string               `json:"icon"`
	IsOpen           *bool                 `json:"isOpen"`
}

type Catalog struct {
	mu       sync.RWMutex
	services map[string]*models.Service
	order    []string
	validate *validator.Validate
}

func New() *Catalog {
	return &Catalog{
		services: make(map[string]*models.Service),
		validate: validator.New(),
	}
}

// Load registers seed services as-is, keeping their ids and open flags.
func (c *Catalog) Load(services ...models.Service) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range services {
		s := s
		normalize(&s)
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if err := c.check(&s); err != nil {
			return fmt.Errorf("load service %q: %w", s.Name, err)
		}
		if _, exists := c.services[s.ID]; !exists {
			c.order = append(c.order, s.ID)
		}
		c.services[s.ID] = &s
	}
	return nil
}

func (c *Catalog) Create(in ServiceInput) (models.Service, error) {
	s := models.Service{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Description:      in.Description,
		Category:         in.Category,
		ExpectedDuration: in.ExpectedDuration,
		PriorityLevel:    in.PriorityLevel,
		Icon:             in.Icon,
		IsOpen:           true,
	}
	normalize(&s)
	if err := c.check(&s); err != nil {
		return models.Service{}, err
	}

	c.mu.Lock()
	c.services[s.ID] = &s
	c.order = append(c.order, s.ID)
	c.mu.Unlock()
	return s, nil
}

func (c *Catalog) Update(id string, p ServicePatch) (models.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.services[id]
	if !ok {
		return models.Service{}, ErrServiceNotFound
	}

	next := *current
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.ExpectedDuration != nil {
		next.ExpectedDuration = *p.ExpectedDuration
	}
	if p.PriorityLevel != nil {
		next.PriorityLevel = *p.PriorityLevel
	}
	if p.Icon != nil {
		next.Icon = *p.Icon
	}
	if p.IsOpen != nil {
		next.IsOpen = *p.IsOpen
	}
	normalize(&next)
	if err := c.check(&next); err != nil {
		return models.Service{}, err
	}

	*current = next
	return next, nil
}

// Toggle flips the open flag and returns the updated service.
func (c *Catalog) Toggle(id string) (models.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.services[id]
	if !ok {
		return models.Service{}, ErrServiceNotFound
	}
	s.IsOpen = !s.IsOpen
	return *s, nil
}

func (c *Catalog) SetOpen(id string, open bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.services[id]
	if !ok {
		return ErrServiceNotFound
	}
	s.IsOpen = open
	return nil
}

// Service implements the lookup the queue engine depends on.
func (c *Catalog) Service(id string) (models.Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.services[id]
	if !ok {
		return models.Service{}, false
	}
	return *s, true
}

// List returns services in creation order.
func (c *Catalog) List() []models.Service {
	return c.collect(func(models.Service) bool { return true })
}

func (c *Catalog) Open() []models.Service {
	return c.collect(func(s models.Service) bool { return s.IsOpen })
}

// Search matches query case-insensitively against name, category and description.
// Name matches are ranked first.
func (c *Catalog) Search(query string) []models.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.List()
	}

	matches := c.collect(func(s models.Service) bool {
		return strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Category), q) ||
			strings.Contains(strings.ToLower(s.Description), q)
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return strings.Contains(strings.ToLower(matches[i].Name), q) &&
			!strings.Contains(strings.ToLower(matches[j].Name), q)
	})
	return matches
}

func (c *Catalog) collect(keep func(models.Service) bool) []models.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Service, 0, len(c.order))
	for _, id := range c.order {
		if s := c.services[id]; keep(*s) {
			out = append(out, *s)
		}
	}
	return out
}

func (c *Catalog) check(s *models.Service) error {
	if err := c.validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidService, err)
	}
	return nil
}

func normalize(s *models.Service) {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	s.Category = strings.TrimSpace(s.Category)
	if s.PriorityLevel == "" {
		s.PriorityLevel = models.PriorityMedium
	}
	if s.Icon == "" {
		s.Icon = defaultIcon
	}
}
