// Package company contains the shipping-company aggregate. Companies are the
// paying side of every order: orders are created on their behalf and their
// balance carries the resulting debt.
package company

import (
	"errors"
	"fmt"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
)

// ErrCompanyIsNotConstructed is returned when a Company instance was not
// created through the NewCompany factory method.
var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")

// Status represents a company's approval state on the platform.
// Only Approved companies may create orders.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status while the operator reviews the company.
	Pending

	// Approved companies may transact.
	Approved

	// Rejected companies were declined by the operator.
	Rejected

	// Suspended companies were approved once and later blocked.
	Suspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Approved:  "Approved",
		Rejected:  "Rejected",
		Suspended: "Suspended",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Company represents a shipping company registered on the platform.
//
// The dispatch core only cares about identity and approval state; profile
// data, documents, and users belong to the admin surface outside this core.
type Company struct {
	id     kernel.UUID
	name   string
	phone  string
	status Status

	isConstructed bool
}

// NewCompany creates a new Company in Pending status.
func NewCompany(id kernel.UUID, name string, phone string) (*Company, error) {
	c := &Company{
		phone:         phone,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompany reconstructs a Company from persistence.
// Used only by repository implementations.
func RestoreCompany(id kernel.UUID, name string, phone string, status Status) (*Company, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	c, err := NewCompany(id, name, phone)
	if err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate ensures the Company was properly constructed.
func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

// ID returns the company's unique identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// Name returns the company's display name.
func (c *Company) Name() string {
	return c.name
}

// Phone returns the company's contact phone.
func (c *Company) Phone() string {
	return c.phone
}

// Status returns the company's approval state.
func (c *Company) Status() Status {
	return c.status
}

// IsApproved reports whether the company may create orders.
func (c *Company) IsApproved() bool {
	return c.status == Approved
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
