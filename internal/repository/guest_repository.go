package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// GuestRepo provides CRUD operations for guest records.  Guests carry no
// lifecycle state of their own; they exist to be referenced by
// reservations.
type GuestRepo struct {
    db *sql.DB
}

// NewGuestRepo returns a new GuestRepo bound to the given database.
func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{db: db} }

// Create inserts a new guest.  The caller supplies the generated UUID in
// guest.ID.  After insert the record is read back so timestamps are set.
func (r *GuestRepo) Create(ctx context.Context, guest *model.Guest) error {
    const q = `INSERT INTO guests (id, full_name, email, phone) VALUES (?, ?, ?, ?)`
    if _, err := r.db.ExecContext(ctx, q, guest.ID, guest.FullName, guest.Email, guest.Phone); err != nil {
        return err
    }
    const sel = `SELECT id, full_name, email, phone, created_at, updated_at FROM guests WHERE id = ?`
    var phone sql.NullString
    err := r.db.QueryRowContext(ctx, sel, guest.ID).Scan(
        &guest.ID, &guest.FullName, &guest.Email, &phone, &guest.CreatedAt, &guest.UpdatedAt,
    )
    if err != nil {
        return err
    }
    if phone.Valid {
        p := phone.String
        guest.Phone = &p
    }
    return nil
}

// FindByID returns the guest with the given id or ErrGuestNotFound.
func (r *GuestRepo) FindByID(ctx context.Context, id string) (*model.Guest, error) {
    const q = `SELECT id, full_name, email, phone, created_at, updated_at FROM guests WHERE id = ?`
    var g model.Guest
    var phone sql.NullString
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &g.ID, &g.FullName, &g.Email, &phone, &g.CreatedAt, &g.UpdatedAt,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrGuestNotFound
        }
        return nil, err
    }
    if phone.Valid {
        p := phone.String
        g.Phone = &p
    }
    return &g, nil
}

// FindAll returns every guest ordered by full name.
func (r *GuestRepo) FindAll(ctx context.Context) ([]model.Guest, error) {
    const q = `SELECT id, full_name, email, phone, created_at, updated_at FROM guests ORDER BY full_name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Guest, 0)
    for rows.Next() {
        var g model.Guest
        var phone sql.NullString
        if err := rows.Scan(&g.ID, &g.FullName, &g.Email, &phone, &g.CreatedAt, &g.UpdatedAt); err != nil {
            return nil, err
        }
        if phone.Valid {
            p := phone.String
            g.Phone = &p
        }
        out = append(out, g)
    }
    return out, rows.Err()
}

// Update rewrites a guest's contact details.
func (r *GuestRepo) Update(ctx context.Context, guest *model.Guest) error {
    const q = `UPDATE guests SET full_name = ?, email = ?, phone = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, guest.FullName, guest.Email, guest.Phone, guest.ID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrGuestNotFound
    }
    return nil
}

// Delete removes a guest by id.
func (r *GuestRepo) Delete(ctx context.Context, id string) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrGuestNotFound
    }
    return nil
}
