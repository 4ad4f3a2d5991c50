package commands

import (
	"context"
	"time"
)

// ReviewDemandCommandHandler handles the business logic for demand review.
// A demand is reviewed exactly once; a second review fails with a conflict
// from the aggregate.
type ReviewDemandCommandHandler struct {
	uowFactory DemandUoWFactory
}

// NewReviewDemandCommandHandler creates a handler for demand review.
func NewReviewDemandCommandHandler(uowFactory DemandUoWFactory) ReviewDemandCommandHandler {
	return ReviewDemandCommandHandler{uowFactory: uowFactory}
}

// Handle processes the demand review command.
func (h ReviewDemandCommandHandler) Handle(ctx context.Context, cmd ReviewDemandCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	demandRepo := uow.DemandRepository()

	reviewed, err := demandRepo.Get(ctx, cmd.DemandID())
	if err != nil {
		return err
	}

	if err = reviewed.Review(cmd.Decision(), cmd.ReviewerID(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = demandRepo.Update(ctx, reviewed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
