package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Check-in
// and check-out dates are stored as DATE columns; with parseTime enabled
// the driver returns them as UTC midnight time.Time values, which is the
// representation the domain layer expects.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, guest_id, room_number, check_in, check_out, status, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }, res *model.Reservation) error {
    return row.Scan(
        &res.ID, &res.GuestID, &res.RoomNumber, &res.CheckIn, &res.CheckOut,
        &res.Status, &res.CreatedAt, &res.UpdatedAt,
    )
}

// Create inserts a new reservation.  The caller supplies the generated
// UUID in res.ID.  After insert the row is read back to populate
// timestamps and defaults.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
    const q = `INSERT INTO reservations (id, guest_id, room_number, check_in, check_out, status)
               VALUES (?, ?, ?, ?, ?, ?)`
    if _, err := r.db.ExecContext(ctx, q,
        res.ID, res.GuestID, res.RoomNumber, res.CheckIn, res.CheckOut, res.Status,
    ); err != nil {
        return err
    }
    sel := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
    return scanReservation(r.db.QueryRowContext(ctx, sel, res.ID), res)
}

// FindByID returns the reservation with the given id or ErrReservationNotFound.
func (r *ReservationRepo) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
    q := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
    var res model.Reservation
    if err := scanReservation(r.db.QueryRowContext(ctx, q, id), &res); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrReservationNotFound
        }
        return nil, err
    }
    return &res, nil
}

// FindAll returns every reservation, newest first.
func (r *ReservationRepo) FindAll(ctx context.Context) ([]model.Reservation, error) {
    q := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC`
    return r.queryMany(ctx, q)
}

// FindByGuest returns all reservations booked for the given guest,
// newest first.
func (r *ReservationRepo) FindByGuest(ctx context.Context, guestID string) ([]model.Reservation, error) {
    q := `SELECT ` + reservationColumns + ` FROM reservations WHERE guest_id = ? ORDER BY created_at DESC`
    return r.queryMany(ctx, q, guestID)
}

// FindByRoom returns all reservations that claim the given room, ordered
// by check-in date.  The caller filters by status; the conflict policy
// lives in the domain layer, not in SQL.
func (r *ReservationRepo) FindByRoom(ctx context.Context, roomNumber int) ([]model.Reservation, error) {
    q := `SELECT ` + reservationColumns + ` FROM reservations WHERE room_number = ? ORDER BY check_in`
    return r.queryMany(ctx, q, roomNumber)
}

func (r *ReservationRepo) queryMany(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        var res model.Reservation
        if err := scanReservation(rows, &res); err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    return out, rows.Err()
}

// UpdateStatus sets the status of a single reservation.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error {
    res, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = ? WHERE id = ?`, status, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrReservationNotFound
    }
    return nil
}

// UpdateStatusWithRoom applies a reservation status change and a room
// status change as a single unit of work.  Check-in and check-out must
// never leave the reservation and its room disagreeing, so both updates
// run in one database transaction; if either fails, neither is applied.
func (r *ReservationRepo) UpdateStatusWithRoom(ctx context.Context, id string, status model.ReservationStatus, roomNumber int, roomStatus model.RoomStatus) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    res, err := tx.ExecContext(ctx, `UPDATE reservations SET status = ? WHERE id = ?`, status, id)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err != nil {
        return err
    } else if n == 0 {
        return ErrReservationNotFound
    }
    res, err = tx.ExecContext(ctx, `UPDATE rooms SET status = ? WHERE number = ?`, roomStatus, roomNumber)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err != nil {
        return err
    } else if n == 0 {
        return ErrRoomNotFound
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
