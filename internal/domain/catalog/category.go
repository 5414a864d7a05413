package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category groups menu items (e.g. "mains", "desserts").
type Category struct {
	shared.BaseEntity
	Slug  string `gorm:"type:varchar(255);not null"`
	Title string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(slug, title string) (*Category, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	title = strings.TrimSpace(title)

	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Category{
		BaseEntity: shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		Slug:       slug,
		Title:      title,
	}, nil
}

// Update updates the category's slug and title
func (c *Category) Update(slug, title string) error {
	slug = strings.TrimSpace(strings.ToLower(slug))
	title = strings.TrimSpace(title)

	if err := validateSlug(slug); err != nil {
		return err
	}
	if err := validateTitle(title); err != nil {
		return err
	}

	c.Slug = slug
	c.Title = title
	c.UpdatedAt = time.Now()
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 255 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 255 characters")
	}
	if !slugPattern.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug may only contain lowercase letters, digits and hyphens")
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 255 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 255 characters")
	}
	return nil
}
