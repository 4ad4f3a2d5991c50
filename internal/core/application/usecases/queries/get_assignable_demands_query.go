// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain aggregates and read optimized models straight
// from the database.
package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/application/auth"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetAssignableDemandsQueryIsNotConstructed = errors.New(
	"GetAssignableDemandsQuery must be created via NewGetAssignableDemandsQuery constructor",
)

// GetAssignableDemandsQuery retrieves demands ready for mission assignment:
// accepted by an operator and not currently bound to a mission. Results are
// restricted to the caller's agency scope.
//
// Example:
//
//	scope, _ := auth.ForAgency("casablanca-center")
//	query, _ := NewGetAssignableDemandsQuery(scope)
//	demands, err := handler.Handle(ctx, query)
type GetAssignableDemandsQuery struct {
	scope auth.Scope

	guard guard.ConstructorGuard
}

// NewGetAssignableDemandsQuery creates a query for assignable demands
// visible under the given scope.
func NewGetAssignableDemandsQuery(scope auth.Scope) (GetAssignableDemandsQuery, error) {
	if err := scope.Validate(); err != nil {
		return GetAssignableDemandsQuery{}, err
	}
	return GetAssignableDemandsQuery{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignableDemandsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableDemandsQueryIsNotConstructed)
}

// Scope returns the agency scope the query is restricted to.
func (q GetAssignableDemandsQuery) Scope() auth.Scope {
	return q.scope
}

// GetAssignableDemandsQueryResponse represents one assignable demand in the
// read model, enriched with the parcel count so dispatchers can size
// missions without a second lookup.
type GetAssignableDemandsQueryResponse struct {
	ID          kernel.UUID
	ShipperID   kernel.UUID
	Agency      string
	ParcelCount int
	ReviewNotes string
	CreatedAt   time.Time
}
