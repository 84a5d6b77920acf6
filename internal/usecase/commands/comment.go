package commands

import (
	"context"

	domcomment "shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"
)

type CreateCommentRequest struct {
	Text string
}

type CreateCommentResult struct {
	CommentID int64
}

type CommentCommands interface {
	Create(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CreateCommentResult, error)
}

type commentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk}
}

func (uc *commentCommandsImpl) Create(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CreateCommentResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, authorID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if _, err := tx.Reads().ItemByID(ctx, itemID); err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}

		text, err := domcomment.NewText(req.Text)
		if err != nil {
			return err
		}

		services := &domcomment.Services{
			Clock:              uc.clock,
			EligibilityChecker: rentalHistory{reads: tx.Reads()},
		}
		c, err := domcomment.NewComment(ctx, services, itemID, authorID, text)
		if err != nil {
			return err
		}

		id, err := tx.Comments().Create(ctx, c)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCommentCreated()
	return &CreateCommentResult{CommentID: createdID}, nil
}

// rentalHistory implements domcomment.EligibilityChecker
type rentalHistory struct {
	reads shared.CommandReads
}

func (r rentalHistory) HasRented(ctx context.Context, in domcomment.EligibilityInput) (bool, error) {
	return r.reads.HasRentedItem(ctx, in.ItemID, in.AuthorID, in.Now)
}
