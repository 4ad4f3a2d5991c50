package driver

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverInactive is returned when assigning a mission to a deactivated driver.
	ErrDriverInactive = errs.NewConflictError("driver", "driver is not active")
)

// Driver represents a courier driver who runs pickup and delivery missions.
// Drivers belong to an agency; mission assignment only considers active
// drivers of the operator's own agency.
type Driver struct {
	id     kernel.UUID
	name   string
	phone  string
	agency string
	active bool
	guard  guard.ConstructorGuard
}

// NewDriver creates a new active Driver.
func NewDriver(id kernel.UUID, name, phone, agency string) (*Driver, error) {
	d := &Driver{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setAgency(agency),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.UUID, name, phone, agency string, active bool) (*Driver, error) {
	d, err := NewDriver(id, name, phone, agency)
	if err != nil {
		return nil, err
	}

	d.active = active
	return d, nil
}

// Validate checks if the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Agency returns the agency the driver works for.
func (d *Driver) Agency() string {
	return d.agency
}

// IsActive reports whether the driver may receive new missions.
func (d *Driver) IsActive() bool {
	return d.active
}

// CanBeAssigned fails with ErrDriverInactive when the driver is deactivated.
func (d *Driver) CanBeAssigned() error {
	if !d.active {
		return ErrDriverInactive
	}
	return nil
}

// Deactivate removes the driver from the assignable pool.
// Running missions are unaffected.
func (d *Driver) Deactivate() {
	d.active = false
}

// Activate returns the driver to the assignable pool.
func (d *Driver) Activate() {
	d.active = true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setAgency(agency string) error {
	if agency == "" {
		return errs.NewValueIsRequiredError("agency")
	}
	d.agency = agency
	return nil
}
