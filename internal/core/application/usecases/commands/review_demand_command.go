package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrReviewDemandCommandIsNotConstructed = errors.New(
	"ReviewDemandCommand must be created via NewReviewDemandCommand constructor",
)

// ReviewDemandCommand represents an operator's decision on a submitted
// demand: accept it into the assignable pool or turn it down.
type ReviewDemandCommand struct { //nolint:recvcheck //using for validation
	demandID   kernel.UUID
	decision   demand.ReviewState
	reviewerID kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewReviewDemandCommand creates a command to review a demand.
// The decision must be Accepted or NotAccepted.
func NewReviewDemandCommand(
	demandID kernel.UUID,
	decision demand.ReviewState,
	reviewerID kernel.UUID,
	notes string,
) (ReviewDemandCommand, error) {
	cmd := ReviewDemandCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDemandID(demandID),
		cmd.setDecision(decision),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return ReviewDemandCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDemandCommand) Validate() error {
	return c.guard.Validate(ErrReviewDemandCommandIsNotConstructed)
}

// DemandID returns the identifier of the demand under review.
func (c ReviewDemandCommand) DemandID() kernel.UUID {
	return c.demandID
}

// Decision returns the review decision.
func (c ReviewDemandCommand) Decision() demand.ReviewState {
	return c.decision
}

// ReviewerID returns the identifier of the reviewing operator.
func (c ReviewDemandCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Notes returns the reviewer's free-form notes.
func (c ReviewDemandCommand) Notes() string {
	return c.notes
}

func (c *ReviewDemandCommand) setDemandID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("demandId", err)
	}
	c.demandID = id
	return nil
}

func (c *ReviewDemandCommand) setDecision(decision demand.ReviewState) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	if !decision.IsDecided() {
		return errs.NewValueIsInvalidError("decision")
	}
	c.decision = decision
	return nil
}

func (c *ReviewDemandCommand) setReviewerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewerId", err)
	}
	c.reviewerID = id
	return nil
}
