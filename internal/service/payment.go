package service

import (
    "context"
    "math"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// TaxRate is the fixed tax applied to every bill.
const TaxRate = 0.11

// Bill is the price breakdown for a completed stay.
type Bill struct {
    Nights   int     `json:"nights"`
    Rate     float64 `json:"rate"`
    Subtotal float64 `json:"subtotal"`
    Tax      float64 `json:"tax"`
    Total    float64 `json:"total"`
}

// PaymentService computes checkout bills and records them in the
// payment ledger.  Recording is a ledger entry, not payment processing.
type PaymentService struct {
    payments PaymentStore
}

// NewPaymentService constructs a PaymentService over the given store.
func NewPaymentService(payments PaymentStore) *PaymentService {
    return &PaymentService{payments: payments}
}

// BillFor prices a stay: nights × nightly rate × (1 + tax rate).  A
// stay of zero or negative computed nights is billed as one night; the
// clamp lives here at the billing boundary, deliberately separate from
// the unclamped nights figure the reservation core reports.
func BillFor(res *model.Reservation, room *model.Room) Bill {
    nights := res.Nights()
    if nights < 1 {
        nights = 1
    }
    subtotal := room.PricePerNight * float64(nights)
    tax := roundCents(subtotal * TaxRate)
    return Bill{
        Nights:   nights,
        Rate:     room.PricePerNight,
        Subtotal: roundCents(subtotal),
        Tax:      tax,
        Total:    roundCents(subtotal + tax),
    }
}

func roundCents(v float64) float64 { return math.Round(v*100) / 100 }

// RecordCheckout writes the ledger entry for a completed checkout and
// returns it together with the bill breakdown.
func (s *PaymentService) RecordCheckout(ctx context.Context, res *model.Reservation, room *model.Room, method model.PaymentMethod) (*model.Payment, Bill, error) {
    bill := BillFor(res, room)
    payment := &model.Payment{
        ID:            uuid.New().String(),
        ReservationID: res.ID,
        Amount:        bill.Total,
        Method:        method,
        Status:        model.PaymentPaid,
        PaidAt:        time.Now().UTC(),
    }
    if err := s.payments.Create(ctx, payment); err != nil {
        return nil, Bill{}, err
    }
    return payment, bill, nil
}

// Payment returns one ledger entry by id.
func (s *PaymentService) Payment(ctx context.Context, id string) (*model.Payment, error) {
    return s.payments.FindByID(ctx, id)
}

// AllPayments returns the full ledger, newest first.
func (s *PaymentService) AllPayments(ctx context.Context) ([]model.Payment, error) {
    return s.payments.FindAll(ctx)
}

// RevenueOn sums the payments recorded on the given calendar day.
func (s *PaymentService) RevenueOn(ctx context.Context, day time.Time) (float64, error) {
    return s.payments.RevenueOn(ctx, day)
}
