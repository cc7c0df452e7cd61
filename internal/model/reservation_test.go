package model

import (
    "testing"
    "time"
)

func day(y int, m time.Month, d int) time.Time {
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOf(t *testing.T) {
    in := time.Date(2026, 1, 10, 17, 42, 9, 120, time.UTC)
    got := DateOf(in)
    want := day(2026, 1, 10)
    if !got.Equal(want) {
        t.Errorf("DateOf(%v) = %v, want %v", in, got, want)
    }
}

func TestNights(t *testing.T) {
    cases := []struct {
        name     string
        in, out  time.Time
        expected int
    }{
        {"five nights", day(2026, 1, 10), day(2026, 1, 15), 5},
        {"one night", day(2026, 1, 10), day(2026, 1, 11), 1},
        {"same day", day(2026, 1, 10), day(2026, 1, 10), 0},
        {"across month end", day(2026, 1, 30), day(2026, 2, 2), 3},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            r := Reservation{CheckIn: tc.in, CheckOut: tc.out}
            if got := r.Nights(); got != tc.expected {
                t.Errorf("Nights() = %d, want %d", got, tc.expected)
            }
        })
    }
}

func TestOverlaps(t *testing.T) {
    r := Reservation{CheckIn: day(2026, 1, 10), CheckOut: day(2026, 1, 15)}

    cases := []struct {
        name     string
        in, out  time.Time
        expected bool
    }{
        {"identical", day(2026, 1, 10), day(2026, 1, 15), true},
        {"contained", day(2026, 1, 11), day(2026, 1, 13), true},
        {"covers", day(2026, 1, 8), day(2026, 1, 20), true},
        {"ends on check-in", day(2026, 1, 8), day(2026, 1, 10), false},
        {"starts on check-out", day(2026, 1, 15), day(2026, 1, 18), false},
        {"before", day(2026, 1, 1), day(2026, 1, 5), false},
        {"after", day(2026, 1, 20), day(2026, 1, 25), false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := r.Overlaps(tc.in, tc.out); got != tc.expected {
                t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.in, tc.out, got, tc.expected)
            }
        })
    }
}

func TestCovers(t *testing.T) {
    r := Reservation{CheckIn: day(2026, 1, 10), CheckOut: day(2026, 1, 15)}

    if !r.Covers(day(2026, 1, 10)) {
        t.Errorf("Covers(check-in day) = false, want true")
    }
    if !r.Covers(day(2026, 1, 14)) {
        t.Errorf("Covers(last night) = false, want true")
    }
    if r.Covers(day(2026, 1, 15)) {
        t.Errorf("Covers(check-out day) = true, want false")
    }
    if r.Covers(day(2026, 1, 9)) {
        t.Errorf("Covers(day before) = true, want false")
    }
}

func TestActive(t *testing.T) {
    cases := []struct {
        status   ReservationStatus
        expected bool
    }{
        {ReservationConfirmed, true},
        {ReservationCheckedIn, true},
        {ReservationCheckedOut, false},
        {ReservationCancelled, false},
    }
    for _, tc := range cases {
        r := Reservation{Status: tc.status}
        if got := r.Active(); got != tc.expected {
            t.Errorf("Active() with status %v = %v, want %v", tc.status, got, tc.expected)
        }
    }
}

func TestRoomIsAvailable(t *testing.T) {
    for _, tc := range []struct {
        status   RoomStatus
        expected bool
    }{
        {RoomAvailable, true},
        {RoomOccupied, false},
        {RoomMaintenance, false},
    } {
        r := Room{Number: 101, Status: tc.status}
        if got := r.IsAvailable(); got != tc.expected {
            t.Errorf("IsAvailable() with status %v = %v, want %v", tc.status, got, tc.expected)
        }
    }
}
