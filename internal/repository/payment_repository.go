package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// PaymentRepo persists the payment ledger.  Entries are written once at
// checkout and never mutated afterwards.
type PaymentRepo struct {
    db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Create inserts a new ledger entry.  The caller supplies the generated
// UUID in payment.ID.
func (r *PaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
    const q = `INSERT INTO payments (id, reservation_id, amount, method, status, paid_at)
               VALUES (?, ?, ?, ?, ?, ?)`
    _, err := r.db.ExecContext(ctx, q,
        payment.ID, payment.ReservationID, payment.Amount, payment.Method, payment.Status, payment.PaidAt,
    )
    return err
}

// FindByID returns the payment with the given id or ErrPaymentNotFound.
func (r *PaymentRepo) FindByID(ctx context.Context, id string) (*model.Payment, error) {
    const q = `SELECT id, reservation_id, amount, method, status, paid_at FROM payments WHERE id = ?`
    var p model.Payment
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.PaidAt,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrPaymentNotFound
        }
        return nil, err
    }
    return &p, nil
}

// FindAll returns every ledger entry, newest first.
func (r *PaymentRepo) FindAll(ctx context.Context) ([]model.Payment, error) {
    const q = `SELECT id, reservation_id, amount, method, status, paid_at FROM payments ORDER BY paid_at DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Payment, 0)
    for rows.Next() {
        var p model.Payment
        if err := rows.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.PaidAt); err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// RevenueOn sums the amounts of all payments recorded on the given
// calendar day.  Used for the dashboard's daily revenue figure.
func (r *PaymentRepo) RevenueOn(ctx context.Context, day time.Time) (float64, error) {
    const q = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE DATE(paid_at) = DATE(?)`
    var total float64
    if err := r.db.QueryRowContext(ctx, q, day).Scan(&total); err != nil {
        return 0, err
    }
    return total, nil
}
