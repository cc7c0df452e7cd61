package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo provides CRUD operations for rooms.  Rooms are keyed by their
// integer room number rather than a surrogate ID.  All timestamp fields
// are assumed to be stored in UTC.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// Create inserts a new room.  It returns ErrRoomExists when the room
// number is already registered.  After insert the record is read back so
// timestamps and defaults are populated.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
    const q = `INSERT INTO rooms (number, capacity, room_type, price_per_night, status)
               VALUES (?, ?, ?, ?, ?)`
    _, err := r.db.ExecContext(ctx, q, room.Number, room.Capacity, room.Type, room.PricePerNight, room.Status)
    if err != nil {
        // MySQL error 1062 signals a duplicate key on the natural key.
        if strings.Contains(err.Error(), "1062") {
            return ErrRoomExists
        }
        return err
    }
    const sel = `SELECT number, capacity, room_type, price_per_night, status, created_at, updated_at
                 FROM rooms WHERE number = ?`
    return r.db.QueryRowContext(ctx, sel, room.Number).Scan(
        &room.Number, &room.Capacity, &room.Type, &room.PricePerNight, &room.Status,
        &room.CreatedAt, &room.UpdatedAt,
    )
}

// FindByNumber returns the room with the given number or ErrRoomNotFound.
func (r *RoomRepo) FindByNumber(ctx context.Context, number int) (*model.Room, error) {
    const q = `SELECT number, capacity, room_type, price_per_night, status, created_at, updated_at
               FROM rooms WHERE number = ?`
    var room model.Room
    err := r.db.QueryRowContext(ctx, q, number).Scan(
        &room.Number, &room.Capacity, &room.Type, &room.PricePerNight, &room.Status,
        &room.CreatedAt, &room.UpdatedAt,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrRoomNotFound
        }
        return nil, err
    }
    return &room, nil
}

// FindAll returns every room ordered by room number.
func (r *RoomRepo) FindAll(ctx context.Context) ([]model.Room, error) {
    const q = `SELECT number, capacity, room_type, price_per_night, status, created_at, updated_at
               FROM rooms ORDER BY number`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Room, 0)
    for rows.Next() {
        var room model.Room
        if err := rows.Scan(
            &room.Number, &room.Capacity, &room.Type, &room.PricePerNight, &room.Status,
            &room.CreatedAt, &room.UpdatedAt,
        ); err != nil {
            return nil, err
        }
        out = append(out, room)
    }
    return out, rows.Err()
}

// Save updates the mutable attributes of an existing room.  The room
// number itself is immutable.  Returns ErrRoomNotFound when no row was
// affected.
func (r *RoomRepo) Save(ctx context.Context, room *model.Room) error {
    const q = `UPDATE rooms SET capacity = ?, room_type = ?, price_per_night = ?, status = ?
               WHERE number = ?`
    res, err := r.db.ExecContext(ctx, q, room.Capacity, room.Type, room.PricePerNight, room.Status, room.Number)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrRoomNotFound
    }
    return nil
}

// UpdateStatus sets the status of a single room.
func (r *RoomRepo) UpdateStatus(ctx context.Context, number int, status model.RoomStatus) error {
    const q = `UPDATE rooms SET status = ? WHERE number = ?`
    res, err := r.db.ExecContext(ctx, q, status, number)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrRoomNotFound
    }
    return nil
}

// Delete removes a room by number.  Rooms referenced by reservations are
// protected by a foreign key; the resulting constraint error surfaces to
// the caller unchanged.
func (r *RoomRepo) Delete(ctx context.Context, number int) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE number = ?`, number)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrRoomNotFound
    }
    return nil
}
