package commands

import (
	"context"

	domuser "shareit/internal/domain/user"
	"shareit/internal/usecase/shared"
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID int64
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error)
	Update(ctx context.Context, userID int64, req UpdateUserRequest) error
	Delete(ctx context.Context, userID int64) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (uc *userCommandsImpl) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	u, err := domuser.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, u)
		if err != nil {
			return conflictAs(err, ErrEmailTaken)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateUserResult{UserID: createdID}, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, userID int64, req UpdateUserRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}

		u := domuser.Reconstruct(snap.ID, snap.Name, snap.Email)
		if err = u.Apply(domuser.Patch{Name: req.Name, Email: req.Email}); err != nil {
			return err
		}
		if err = tx.Users().Update(ctx, u); err != nil {
			return conflictAs(err, ErrEmailTaken)
		}
		return nil
	})
}

func (uc *userCommandsImpl) Delete(ctx context.Context, userID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Users().Delete(ctx, userID), ErrUserNotFound)
	})
}
