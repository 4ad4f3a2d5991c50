package parcel

import (
	"errors"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when using an improperly
// initialized Recipient. Recipients must be created via NewRecipient.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient is the contact block of the person a parcel is addressed to.
// It is an immutable value object. The address is free text; there is no
// geographic model behind it.
type Recipient struct { //nolint:recvcheck //using for validation
	name           string
	primaryPhone   string
	secondaryPhone string
	address        string
	region         string

	guard guard.ConstructorGuard
}

// NewRecipient creates a validated recipient contact block.
// Name, primary phone, address, and region are required; the secondary
// phone is optional.
func NewRecipient(name, primaryPhone, secondaryPhone, address, region string) (Recipient, error) {
	r := Recipient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setPrimaryPhone(primaryPhone),
		r.setAddress(address),
		r.setRegion(region),
	); err != nil {
		return Recipient{}, err
	}

	r.secondaryPhone = secondaryPhone
	return r, nil
}

// Validate ensures the recipient was created through the constructor.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's full name.
func (r Recipient) Name() string {
	return r.name
}

// PrimaryPhone returns the recipient's main phone number.
func (r Recipient) PrimaryPhone() string {
	return r.primaryPhone
}

// SecondaryPhone returns the recipient's alternate phone number, if any.
func (r Recipient) SecondaryPhone() string {
	return r.secondaryPhone
}

// Address returns the free-text delivery address.
func (r Recipient) Address() string {
	return r.address
}

// Region returns the recipient's region name.
func (r Recipient) Region() string {
	return r.region
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setPrimaryPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("recipient primary phone")
	}
	r.primaryPhone = phone
	return nil
}

func (r *Recipient) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("recipient address")
	}
	r.address = address
	return nil
}

func (r *Recipient) setRegion(region string) error {
	if region == "" {
		return errs.NewValueIsRequiredError("recipient region")
	}
	r.region = region
	return nil
}
