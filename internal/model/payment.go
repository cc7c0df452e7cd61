package model

import "time"

// PaymentMethod enumerates how a guest settled the bill.
type PaymentMethod string

const (
    PaymentCash PaymentMethod = "CASH"
    PaymentCard PaymentMethod = "CARD"
)

// PaymentStatus tracks the state of a ledger entry.  Payments are
// recorded, not processed, so entries are written as PAID.
type PaymentStatus string

const (
    PaymentPaid PaymentStatus = "PAID"
)

// Payment is the ledger entry written when a reservation completes
// checkout.  One payment is recorded per completed checkout; the amount
// includes the fixed tax.  This struct corresponds to a row in the
// `payments` table.
//
// Fields:
//  ID            – generated UUID identifier.
//  ReservationID – reservation the payment settles.
//  Amount        – total charged: nights × rate × (1 + tax rate).
//  Method        – how the guest paid (CASH, CARD).
//  Status        – ledger status, always PAID.
//  PaidAt        – timestamp when the payment was recorded.
type Payment struct {
    ID            string        `json:"id"`             // payments.id
    ReservationID string        `json:"reservation_id"` // payments.reservation_id
    Amount        float64       `json:"amount"`         // payments.amount
    Method        PaymentMethod `json:"method"`         // payments.method
    Status        PaymentStatus `json:"status"`         // payments.status
    PaidAt        time.Time     `json:"paid_at"`        // payments.paid_at
}
