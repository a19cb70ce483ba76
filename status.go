package gridtable

import (
	"context"
	"strings"
)

// StatusCategory is the visual category of a status badge.
type StatusCategory int

const (
	// StatusNeutral is used for every unrecognized status
	StatusNeutral StatusCategory = iota
	StatusPaid
	StatusUnpaid
	StatusPending
	StatusProcessing
	StatusCancelled
)

func (c StatusCategory) String() string {
	switch c {
	case StatusPaid:
		return "paid"
	case StatusUnpaid:
		return "unpaid"
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusCancelled:
		return "cancelled"
	}
	return "neutral"
}

// CategorizeStatus returns the category of a status string
// matched case-insensitive. Unknown strings are StatusNeutral.
func CategorizeStatus(status string) StatusCategory {
	switch strings.ToLower(status) {
	case "paid":
		return StatusPaid
	case "not paid", "unpaid":
		return StatusUnpaid
	case "pending":
		return StatusPending
	case "processing":
		return StatusProcessing
	case "cancelled":
		return StatusCancelled
	}
	return StatusNeutral
}

// StatusRenderer renders status strings as badges.
// Implementations must return output for every status string.
type StatusRenderer interface {
	RenderStatus(ctx context.Context, status string) (str string, raw bool, err error)
}

// StatusRendererFunc implements StatusRenderer for a function.
type StatusRendererFunc func(ctx context.Context, status string) (str string, raw bool, err error)

func (f StatusRendererFunc) RenderStatus(ctx context.Context, status string) (str string, raw bool, err error) {
	return f(ctx, status)
}

// PlainStatusRenderer renders the status text unchanged.
type PlainStatusRenderer struct{}

func (PlainStatusRenderer) RenderStatus(ctx context.Context, status string) (str string, raw bool, err error) {
	return status, false, nil
}
