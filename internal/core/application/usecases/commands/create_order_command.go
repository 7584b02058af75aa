package commands

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order on
// behalf of a company. The same command shape serves the HTTP API and every
// channel adapter; channels identify themselves through the details' source
// tag.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	details   order.Details

	// precomputed figures from channels that already routed the trip
	externalDistanceKm *decimal.Decimal
	externalTimeMin    *int

	dispatchToCouriers bool
	requiresApproval   bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Details are validated structurally here; business checks such as company
// approval and geofencing happen in the handler.
func NewCreateOrderCommand(
	companyID kernel.UUID,
	details order.Details,
	externalDistanceKm *decimal.Decimal,
	externalTimeMin *int,
	dispatchToCouriers bool,
	requiresApproval bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details:            details,
		externalDistanceKm: externalDistanceKm,
		externalTimeMin:    externalTimeMin,
		dispatchToCouriers: dispatchToCouriers,
		requiresApproval:   requiresApproval,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		details.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CompanyID returns the ordering company's identifier.
func (c CreateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Details returns the order details to record.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// ExternalDistanceKm returns the channel-precomputed distance, or nil.
func (c CreateOrderCommand) ExternalDistanceKm() *decimal.Decimal {
	return c.externalDistanceKm
}

// ExternalTimeMin returns the channel-precomputed travel time, or nil.
func (c CreateOrderCommand) ExternalTimeMin() *int {
	return c.externalTimeMin
}

// DispatchToCouriers reports whether the order should immediately enter the
// courier pool.
func (c CreateOrderCommand) DispatchToCouriers() bool {
	return c.dispatchToCouriers
}

// RequiresApproval reports whether the channel demands manual price approval
// before dispatch.
func (c CreateOrderCommand) RequiresApproval() bool {
	return c.requiresApproval
}

func (c *CreateOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}
