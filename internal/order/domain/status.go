package domain

import "fmt"

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipping  OrderStatus = "shipping"
	StatusCompleted OrderStatus = "completed"
	StatusReturned  OrderStatus = "returned"
	StatusRestocked OrderStatus = "restocked"
	StatusCancelled OrderStatus = "cancelled"
)

// Partition classifies a status by its stock effect. Deducted means the
// order currently holds stock taken out of the balance; restocked means the
// stock has been given back (or was taken back out and returned).
type Partition int

const (
	PartitionUnknown Partition = iota
	PartitionDeducted
	PartitionRestocked
)

var statusPartitions = map[OrderStatus]Partition{
	StatusPending:   PartitionDeducted,
	StatusConfirmed: PartitionDeducted,
	StatusShipping:  PartitionDeducted,
	StatusCompleted: PartitionDeducted,
	StatusCancelled: PartitionRestocked,
	StatusReturned:  PartitionRestocked,
	StatusRestocked: PartitionRestocked,
}

// StatusPartition is a total function from status to partition. A status
// outside the seven known values maps to PartitionUnknown so that any
// transition involving it is rejected rather than silently skipping the
// stock step.
func StatusPartition(s OrderStatus) Partition {
	if p, ok := statusPartitions[s]; ok {
		return p
	}
	return PartitionUnknown
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	return StatusPartition(s) != PartitionUnknown
}

// StockAction is the balance effect a status transition requires.
type StockAction int

const (
	ActionNone StockAction = iota
	ActionRestock
	ActionDeduct
)

// TransitionAction returns the stock action for a status change. It is keyed
// on partition membership, not on specific status pairs: shipping→cancelled
// and pending→returned both restock, cancelled→confirmed and returned→pending
// both re-deduct.
func TransitionAction(oldStatus, newStatus OrderStatus) (StockAction, error) {
	oldPart := StatusPartition(oldStatus)
	newPart := StatusPartition(newStatus)
	if oldPart == PartitionUnknown {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownStatus, oldStatus)
	}
	if newPart == PartitionUnknown {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	switch {
	case oldPart == PartitionDeducted && newPart == PartitionRestocked:
		return ActionRestock, nil
	case oldPart == PartitionRestocked && newPart == PartitionDeducted:
		return ActionDeduct, nil
	default:
		return ActionNone, nil
	}
}
