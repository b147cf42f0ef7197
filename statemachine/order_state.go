package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/access"
	"restaurant-pos/models"
)

// ErrInvalidTransition is returned for any move the table below does not allow
var ErrInvalidTransition = errors.New("invalid transition")

// Transition defines a valid state change and the roles that may perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Roles []access.Role      `json:"roles"`
}

var (
	kitchenSide = []access.Role{access.RoleAdmin, access.RoleManager, access.RoleKitchen}
	floorSide   = []access.Role{access.RoleAdmin, access.RoleManager, access.RoleServer, access.RoleCounter}
)

// validTransitions is the authoritative order lifecycle
var validTransitions = []Transition{
	// Kitchen picks up and finishes the order
	{From: models.StatusPending, To: models.StatusPreparing, Roles: kitchenSide},
	{From: models.StatusPreparing, To: models.StatusReady, Roles: kitchenSide},
	// Floor staff serve and close it
	{From: models.StatusReady, To: models.StatusServed, Roles: floorSide},
	{From: models.StatusServed, To: models.StatusCompleted, Roles: floorSide},
	// Cancellation is possible until the food is ready
	{From: models.StatusPending, To: models.StatusCancelled, Roles: floorSide},
	{From: models.StatusPreparing, To: models.StatusCancelled, Roles: floorSide},
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether role may move an order from one state to another
func CanTransition(from, to models.OrderStatus, role access.Role) error {
	for _, t := range validTransitions {
		if t.From != from || t.To != to {
			continue
		}
		if access.IsAllowed(role, t.Roles) {
			return nil
		}
		return fmt.Errorf("%w: %s → %s is not allowed for role '%s'", ErrInvalidTransition, from, to, role)
	}
	return fmt.Errorf("%w: %s → %s; valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

// IsTerminal reports whether no transition leaves status
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// ActiveStatuses are the statuses of orders still in progress
func ActiveStatuses() []models.OrderStatus {
	return []models.OrderStatus{models.StatusPending, models.StatusPreparing, models.StatusReady, models.StatusServed}
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
