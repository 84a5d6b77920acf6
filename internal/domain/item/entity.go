package item

import (
	"strings"

	"shareit/internal/domain/access"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
)

var (
	ErrEmptyName        = errs.Validation("item name must not be blank")
	ErrEmptyDescription = errs.Validation("item description must not be blank")
)

type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func Reconstruct(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// Patch carries the fields an owner may change; nil leaves a field as is.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply updates the item on behalf of actorID. Anyone but the owner is told
// the item does not exist.
func (i *Item) Apply(actorID int64, p Patch) error {
	if err := access.Check(access.CanEditItem(actorID, i.ownerID), access.ResourceItem); err != nil {
		return err
	}
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := validateDescription(*p.Description); err != nil {
			return err
		}
	}

	i.name = patch.Coalesce(p.Name, i.name)
	i.description = patch.Coalesce(p.Description, i.description)
	i.available = patch.Coalesce(p.Available, i.available)
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }
