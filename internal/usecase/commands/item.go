package commands

import (
	"context"

	"shareit/internal/domain/access"
	domitem "shareit/internal/domain/item"
	"shareit/internal/usecase/shared"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID int64
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*CreateItemResult, error)
	Update(ctx context.Context, actorID, itemID int64, req UpdateItemRequest) error
	Delete(ctx context.Context, actorID, itemID int64) error
}

type itemCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemCommandsImpl{uow: uow}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*CreateItemResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, ownerID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if req.RequestID != nil {
			if _, err := tx.Reads().RequestByID(ctx, *req.RequestID); err != nil {
				return notFoundAs(err, ErrRequestNotFound)
			}
		}

		it, err := domitem.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
		if err != nil {
			return err
		}
		id, err := tx.Items().Create(ctx, it)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemResult{ItemID: createdID}, nil
}

func (uc *itemCommandsImpl) Update(ctx context.Context, actorID, itemID int64, req UpdateItemRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}

		it := domitem.Reconstruct(snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.Available, snap.RequestID)
		if err = it.Apply(actorID, domitem.Patch{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		}); err != nil {
			return err
		}
		return tx.Items().Update(ctx, it)
	})
}

func (uc *itemCommandsImpl) Delete(ctx context.Context, actorID, itemID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}
		if err = access.Check(access.CanEditItem(actorID, snap.OwnerID), access.ResourceItem); err != nil {
			return err
		}
		return tx.Items().Delete(ctx, itemID)
	})
}
