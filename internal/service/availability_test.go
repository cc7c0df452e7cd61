package service

import (
    "context"
    "errors"
    "testing"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

func TestIsAvailableNoConflicts(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)

    ok, err := w.roomSvc.IsAvailable(context.Background(), 101, date(2026, 1, 10), date(2026, 1, 12))
    if err != nil {
        t.Fatalf("IsAvailable returned error: %v", err)
    }
    if !ok {
        t.Errorf("IsAvailable = false, want true for empty room")
    }
}

func TestIsAvailableUnknownRoom(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)

    ok, err := w.roomSvc.IsAvailable(context.Background(), 999, date(2026, 1, 10), date(2026, 1, 12))
    if err != nil {
        t.Fatalf("IsAvailable returned error: %v", err)
    }
    if ok {
        t.Errorf("IsAvailable = true, want false for unknown room")
    }
}

func TestIsAvailableOverlapRules(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")

    // Existing stay occupies Jan 10 .. Jan 15.
    if _, err := w.reservationSvc.Create(context.Background(), "g1", 101, date(2026, 1, 10), date(2026, 1, 15)); err != nil {
        t.Fatalf("seed reservation: %v", err)
    }

    cases := []struct {
        name     string
        in, out  int // day of January 2026
        expected bool
    }{
        {"identical range", 10, 15, false},
        {"contained inside", 11, 13, false},
        {"overlaps start", 8, 11, false},
        {"overlaps end", 14, 18, false},
        {"back to back before", 8, 10, true},
        {"back to back after", 15, 18, true},
        {"well before", 1, 5, true},
        {"well after", 20, 25, true},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            ok, err := w.roomSvc.IsAvailable(context.Background(), 101, date(2026, 1, tc.in), date(2026, 1, tc.out))
            if err != nil {
                t.Fatalf("IsAvailable returned error: %v", err)
            }
            if ok != tc.expected {
                t.Errorf("IsAvailable(%d..%d) = %v, want %v", tc.in, tc.out, ok, tc.expected)
            }
        })
    }
}

func TestCancelledReservationNeverBlocks(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")

    res, err := w.reservationSvc.Create(context.Background(), "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("seed reservation: %v", err)
    }
    if err := w.reservationSvc.Cancel(context.Background(), res.ID); err != nil {
        t.Fatalf("cancel: %v", err)
    }

    ok, err := w.roomSvc.IsAvailable(context.Background(), 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("IsAvailable returned error: %v", err)
    }
    if !ok {
        t.Errorf("cancelled reservation still blocks the room")
    }
}

func TestMaintenanceRoomUnbookable(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomMaintenance, 100)
    w.addGuest("g1")

    ok, err := w.roomSvc.IsAvailable(context.Background(), 101, date(2026, 3, 1), date(2026, 3, 5))
    if err != nil {
        t.Fatalf("IsAvailable returned error: %v", err)
    }
    if ok {
        t.Errorf("maintenance room reported available")
    }

    _, err = w.reservationSvc.Create(context.Background(), "g1", 101, date(2026, 3, 1), date(2026, 3, 5))
    if !errors.Is(err, ErrRoomUnavailable) {
        t.Errorf("Create on maintenance room: err = %v, want ErrRoomUnavailable", err)
    }
}

func TestSetMaintenanceTransitions(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomOccupied, 100)
    w.addRoom(102, model.RoomAvailable, 100)

    if _, err := w.roomSvc.SetMaintenance(context.Background(), 101, true); !errors.Is(err, ErrInvalidTransition) {
        t.Errorf("maintenance on occupied room: err = %v, want ErrInvalidTransition", err)
    }

    room, err := w.roomSvc.SetMaintenance(context.Background(), 102, true)
    if err != nil {
        t.Fatalf("set maintenance: %v", err)
    }
    if room.Status != model.RoomMaintenance {
        t.Errorf("room status = %v, want MAINTENANCE", room.Status)
    }

    room, err = w.roomSvc.SetMaintenance(context.Background(), 102, false)
    if err != nil {
        t.Fatalf("clear maintenance: %v", err)
    }
    if room.Status != model.RoomAvailable {
        t.Errorf("room status = %v, want AVAILABLE", room.Status)
    }
}

func TestAvailableRoomsFilters(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addRoom(102, model.RoomMaintenance, 100)
    w.addRoom(103, model.RoomAvailable, 150)
    w.addGuest("g1")

    if _, err := w.reservationSvc.Create(context.Background(), "g1", 103, date(2026, 1, 10), date(2026, 1, 15)); err != nil {
        t.Fatalf("seed reservation: %v", err)
    }

    rooms, err := w.roomSvc.AvailableRooms(context.Background(), date(2026, 1, 12), date(2026, 1, 14))
    if err != nil {
        t.Fatalf("AvailableRooms returned error: %v", err)
    }
    if len(rooms) != 1 || rooms[0].Number != 101 {
        t.Errorf("AvailableRooms = %v, want only room 101", rooms)
    }
}
