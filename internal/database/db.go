package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"
)

// dsn assembles the MySQL connection string.
//
//   - parseTime + loc=UTC: DATE and DATETIME columns scan as UTC
//     time.Time values, keeping reservation calendar dates free of
//     timezone drift.
//   - clientFoundRows: RowsAffected reports matched rows rather than
//     changed rows.  Status updates sometimes write the value already
//     in place (checking a guest into a room that is OCCUPIED by an
//     earlier arrival), and without this flag such updates report zero
//     rows and are indistinguishable from a missing row.
func dsn(user, pass, host, port, name string) string {
    auth := user
    if pass != "" {
        auth = user + ":" + pass
    }
    return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
        auth, host, port, name)
}

// Open connects to MySQL, configures the connection pool and verifies
// the connection with a short ping.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    db, err := sql.Open("mysql", dsn(user, pass, host, port, name))
    if err != nil {
        return nil, err
    }
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        _ = db.Close()
        return nil, err
    }
    return db, nil
}
