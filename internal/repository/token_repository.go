package repository

import (
    "context"
    "database/sql"
    "time"
)

// TokenRepo manages the refresh_tokens table.  A row is written once at
// login and soft-deleted by setting revoked_at.  Expiry and revocation
// are both enforced inside the lookup query, so a token is either
// currently usable or invisible to callers.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh records the hash of a newly issued refresh token.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
    const q = `INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?, ?, ?)`
    _, err := r.DB.ExecContext(ctx, q, userID, tokenHash, exp.UTC())
    return err
}

// ValidateRefresh resolves a token hash to its owning user id.  Revoked
// and expired tokens are filtered by the query, so anything not
// currently usable surfaces as sql.ErrNoRows.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
    const q = `SELECT user_id FROM refresh_tokens
               WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > UTC_TIMESTAMP()
               LIMIT 1`
    var userID uint64
    if err := r.DB.QueryRowContext(ctx, q, tokenHash).Scan(&userID); err != nil {
        return 0, err
    }
    return userID, nil
}

// RevokeByHash ends the session behind a single refresh token.
// Revoking an already-revoked or unknown hash is a no-op.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
    const q = `UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP()
               WHERE token_hash = ? AND revoked_at IS NULL`
    _, err := r.DB.ExecContext(ctx, q, tokenHash)
    return err
}

// RevokeAllForUser ends every active session of one staff member.  Used
// by bearer-token logout and after a password change.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
    const q = `UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP()
               WHERE user_id = ? AND revoked_at IS NULL`
    _, err := r.DB.ExecContext(ctx, q, userID)
    return err
}
