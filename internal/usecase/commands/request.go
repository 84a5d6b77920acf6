package commands

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

type CreateRequestRequest struct {
	Description string
}

type CreateRequestResult struct {
	RequestID int64
}

type RequestCommands interface {
	Create(ctx context.Context, requesterID int64, req CreateRequestRequest) (*CreateRequestResult, error)
}

type requestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, clock: clk}
}

func (uc *requestCommandsImpl) Create(ctx context.Context, requesterID int64, req CreateRequestRequest) (*CreateRequestResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, requesterID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}

		r, err := itemrequest.NewItemRequest(requesterID, req.Description, uc.clock.Now())
		if err != nil {
			return err
		}
		id, err := tx.Requests().Create(ctx, r)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateRequestResult{RequestID: createdID}, nil
}
