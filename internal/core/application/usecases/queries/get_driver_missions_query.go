package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/application/auth"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetDriverMissionsQueryIsNotConstructed = errors.New(
	"GetDriverMissionsQuery must be created via NewGetDriverMissionsQuery constructor",
)

// GetDriverMissionsQuery retrieves a driver's open missions: everything not
// yet completed or cancelled. This is the driver's work queue. The result
// is empty when the driver belongs to an agency outside the caller's scope.
type GetDriverMissionsQuery struct {
	driverID kernel.UUID
	scope    auth.Scope

	guard guard.ConstructorGuard
}

// NewGetDriverMissionsQuery creates a query for a driver's open missions
// visible under the given scope.
func NewGetDriverMissionsQuery(driverID kernel.UUID, scope auth.Scope) (GetDriverMissionsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverMissionsQuery{}, err
	}
	if err := scope.Validate(); err != nil {
		return GetDriverMissionsQuery{}, err
	}
	return GetDriverMissionsQuery{
		driverID: driverID,
		scope:    scope,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverMissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverMissionsQueryIsNotConstructed)
}

// DriverID returns the driver whose missions are requested.
func (q GetDriverMissionsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Scope returns the agency scope the query is restricted to.
func (q GetDriverMissionsQuery) Scope() auth.Scope {
	return q.scope
}

// GetDriverMissionsQueryResponse represents one open mission on a driver's
// work queue. Kind and status are display strings, and the parcel count
// tells the driver how much cargo the mission carries.
type GetDriverMissionsQueryResponse struct {
	ID           kernel.UUID
	Number       string
	Kind         string
	Status       string
	StatusReason string
	ParcelCount  int
	ScheduledAt  time.Time
}
