package service

import (
    "context"
    "errors"
    "sync"
    "testing"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

func TestCreateReservation(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")

    res, err := w.reservationSvc.Create(context.Background(), "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("Create returned error: %v", err)
    }
    if res.Status != model.ReservationConfirmed {
        t.Errorf("new reservation status = %v, want CONFIRMED", res.Status)
    }
    if res.ID == "" {
        t.Errorf("new reservation has empty id")
    }
    if got := res.Nights(); got != 5 {
        t.Errorf("Nights() = %d, want 5", got)
    }
}

func TestCreateReservationMissingRefs(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")

    _, err := w.reservationSvc.Create(context.Background(), "nobody", 101, date(2026, 1, 10), date(2026, 1, 12))
    if !errors.Is(err, repository.ErrGuestNotFound) {
        t.Errorf("unknown guest: err = %v, want ErrGuestNotFound", err)
    }

    _, err = w.reservationSvc.Create(context.Background(), "g1", 999, date(2026, 1, 10), date(2026, 1, 12))
    if !errors.Is(err, repository.ErrRoomNotFound) {
        t.Errorf("unknown room: err = %v, want ErrRoomNotFound", err)
    }
}

func TestDoubleBookingRejected(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    w.addGuest("g2")

    if _, err := w.reservationSvc.Create(context.Background(), "g1", 101, date(2026, 1, 10), date(2026, 1, 15)); err != nil {
        t.Fatalf("first booking: %v", err)
    }
    _, err := w.reservationSvc.Create(context.Background(), "g2", 101, date(2026, 1, 12), date(2026, 1, 17))
    if !errors.Is(err, ErrRoomUnavailable) {
        t.Errorf("overlapping booking: err = %v, want ErrRoomUnavailable", err)
    }
}

func TestConcurrentBookingSameRoom(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)

    const workers = 16
    for i := 0; i < workers; i++ {
        w.addGuest(guestID(i))
    }

    var wg sync.WaitGroup
    results := make(chan error, workers)
    for i := 0; i < workers; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            _, err := w.reservationSvc.Create(context.Background(), guestID(i), 101, date(2026, 1, 10), date(2026, 1, 15))
            results <- err
        }(i)
    }
    wg.Wait()
    close(results)

    won, lost := 0, 0
    for err := range results {
        switch {
        case err == nil:
            won++
        case errors.Is(err, ErrRoomUnavailable):
            lost++
        default:
            t.Fatalf("unexpected error: %v", err)
        }
    }
    if won != 1 {
        t.Errorf("winners = %d, want exactly 1 (losers = %d)", won, lost)
    }
}

func guestID(i int) string {
    return string(rune('a'+i)) + "-guest"
}

func TestLifecycleHappyPath(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    ctx := context.Background()

    res, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create: %v", err)
    }

    res, err = w.reservationSvc.CheckIn(ctx, res.ID)
    if err != nil {
        t.Fatalf("check-in: %v", err)
    }
    if res.Status != model.ReservationCheckedIn {
        t.Errorf("status after check-in = %v, want CHECKED_IN", res.Status)
    }
    room, _ := w.roomSvc.GetRoom(ctx, 101)
    if room.Status != model.RoomOccupied {
        t.Errorf("room status after check-in = %v, want OCCUPIED", room.Status)
    }

    res, err = w.reservationSvc.CheckOut(ctx, res.ID)
    if err != nil {
        t.Fatalf("check-out: %v", err)
    }
    if res.Status != model.ReservationCheckedOut {
        t.Errorf("status after check-out = %v, want CHECKED_OUT", res.Status)
    }
    room, _ = w.roomSvc.GetRoom(ctx, 101)
    if room.Status != model.RoomAvailable {
        t.Errorf("room status after check-out = %v, want AVAILABLE", room.Status)
    }
}

func TestCheckOutToMaintenance(t *testing.T) {
    w := newTestWorld(model.RoomMaintenance)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    ctx := context.Background()

    res, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create: %v", err)
    }
    if _, err := w.reservationSvc.CheckIn(ctx, res.ID); err != nil {
        t.Fatalf("check-in: %v", err)
    }
    if _, err := w.reservationSvc.CheckOut(ctx, res.ID); err != nil {
        t.Fatalf("check-out: %v", err)
    }
    room, _ := w.roomSvc.GetRoom(ctx, 101)
    if room.Status != model.RoomMaintenance {
        t.Errorf("room status after check-out = %v, want MAINTENANCE", room.Status)
    }
}

func TestCreateStoreFailureLeavesNoTrace(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    ctx := context.Background()

    w.reservations.createErr = errors.New("insert failed")
    if _, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15)); err == nil {
        t.Fatalf("Create with failing store returned nil error")
    }

    all, err := w.reservationSvc.All(ctx)
    if err != nil {
        t.Fatalf("All returned error: %v", err)
    }
    if len(all) != 0 {
        t.Errorf("reservations after failed create = %d, want 0", len(all))
    }

    // The room and its dates stay bookable once the store recovers.
    w.reservations.createErr = nil
    if _, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15)); err != nil {
        t.Errorf("Create after store recovery: err = %v, want nil", err)
    }
}

func TestCheckInWithRoomAlreadyOccupied(t *testing.T) {
    // Two non-overlapping stays booked while the room was free.  The
    // second check-in writes OCCUPIED over OCCUPIED; that unchanged
    // room write must still succeed.
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    w.addGuest("g2")
    ctx := context.Background()

    r1, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create r1: %v", err)
    }
    r2, err := w.reservationSvc.Create(ctx, "g2", 101, date(2026, 1, 20), date(2026, 1, 25))
    if err != nil {
        t.Fatalf("create r2: %v", err)
    }

    if _, err := w.reservationSvc.CheckIn(ctx, r1.ID); err != nil {
        t.Fatalf("check-in r1: %v", err)
    }
    got, err := w.reservationSvc.CheckIn(ctx, r2.ID)
    if err != nil {
        t.Fatalf("check-in r2 with room already occupied: err = %v, want nil", err)
    }
    if got.Status != model.ReservationCheckedIn {
        t.Errorf("r2 status = %v, want CHECKED_IN", got.Status)
    }
    room, _ := w.roomSvc.GetRoom(ctx, 101)
    if room.Status != model.RoomOccupied {
        t.Errorf("room status = %v, want OCCUPIED", room.Status)
    }
}

func TestInvalidTransitions(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    ctx := context.Background()

    res, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create: %v", err)
    }

    // Checkout before check-in.
    if _, err := w.reservationSvc.CheckOut(ctx, res.ID); !errors.Is(err, ErrInvalidTransition) {
        t.Errorf("check-out of CONFIRMED: err = %v, want ErrInvalidTransition", err)
    }

    if _, err := w.reservationSvc.CheckIn(ctx, res.ID); err != nil {
        t.Fatalf("check-in: %v", err)
    }
    // Double check-in.
    if _, err := w.reservationSvc.CheckIn(ctx, res.ID); !errors.Is(err, ErrInvalidTransition) {
        t.Errorf("second check-in: err = %v, want ErrInvalidTransition", err)
    }

    if _, err := w.reservationSvc.CheckOut(ctx, res.ID); err != nil {
        t.Fatalf("check-out: %v", err)
    }
    // No transitions out of CHECKED_OUT.
    if _, err := w.reservationSvc.CheckIn(ctx, res.ID); !errors.Is(err, ErrInvalidTransition) {
        t.Errorf("check-in of CHECKED_OUT: err = %v, want ErrInvalidTransition", err)
    }
    if err := w.reservationSvc.Cancel(ctx, res.ID); !errors.Is(err, ErrInvalidTransition) {
        t.Errorf("cancel of CHECKED_OUT: err = %v, want ErrInvalidTransition", err)
    }
}

func TestCancelIdempotent(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    ctx := context.Background()

    // Unknown id is a no-op.
    if err := w.reservationSvc.Cancel(ctx, "missing"); err != nil {
        t.Errorf("cancel of unknown id: err = %v, want nil", err)
    }

    res, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create: %v", err)
    }
    if err := w.reservationSvc.Cancel(ctx, res.ID); err != nil {
        t.Fatalf("cancel: %v", err)
    }
    // Second cancel is a no-op too.
    if err := w.reservationSvc.Cancel(ctx, res.ID); err != nil {
        t.Errorf("second cancel: err = %v, want nil", err)
    }
    got, err := w.reservationSvc.Get(ctx, res.ID)
    if err != nil {
        t.Fatalf("get: %v", err)
    }
    if got.Status != model.ReservationCancelled {
        t.Errorf("status = %v, want CANCELLED", got.Status)
    }
}

func TestCancelCheckedInReleasesRoom(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    ctx := context.Background()

    res, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create: %v", err)
    }
    if _, err := w.reservationSvc.CheckIn(ctx, res.ID); err != nil {
        t.Fatalf("check-in: %v", err)
    }
    if err := w.reservationSvc.Cancel(ctx, res.ID); err != nil {
        t.Fatalf("cancel: %v", err)
    }
    room, _ := w.roomSvc.GetRoom(ctx, 101)
    if room.Status != model.RoomAvailable {
        t.Errorf("room status after cancelling checked-in stay = %v, want AVAILABLE", room.Status)
    }
}

func TestRebookAfterCheckout(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addGuest("g1")
    w.addGuest("g2")
    ctx := context.Background()

    res, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create: %v", err)
    }
    if _, err := w.reservationSvc.CheckIn(ctx, res.ID); err != nil {
        t.Fatalf("check-in: %v", err)
    }
    if _, err := w.reservationSvc.CheckOut(ctx, res.ID); err != nil {
        t.Fatalf("check-out: %v", err)
    }

    // The completed stay must not block the same dates anymore.
    if _, err := w.reservationSvc.Create(ctx, "g2", 101, date(2026, 1, 10), date(2026, 1, 15)); err != nil {
        t.Errorf("rebooking after checkout: err = %v, want nil", err)
    }
}

func TestDailyCounts(t *testing.T) {
    w := newTestWorld(model.RoomAvailable)
    w.addRoom(101, model.RoomAvailable, 100)
    w.addRoom(102, model.RoomAvailable, 100)
    w.addGuest("g1")
    w.addGuest("g2")
    ctx := context.Background()

    // g1 stays Jan 10..15, g2 arrives Jan 12.
    r1, err := w.reservationSvc.Create(ctx, "g1", 101, date(2026, 1, 10), date(2026, 1, 15))
    if err != nil {
        t.Fatalf("create r1: %v", err)
    }
    if _, err := w.reservationSvc.Create(ctx, "g2", 102, date(2026, 1, 12), date(2026, 1, 14)); err != nil {
        t.Fatalf("create r2: %v", err)
    }
    if _, err := w.reservationSvc.CheckIn(ctx, r1.ID); err != nil {
        t.Fatalf("check-in r1: %v", err)
    }

    if n, _ := w.reservationSvc.OccupiedRooms(ctx, date(2026, 1, 12)); n != 2 {
        t.Errorf("OccupiedRooms(Jan 12) = %d, want 2", n)
    }
    // Check-out day is exclusive.
    if n, _ := w.reservationSvc.OccupiedRooms(ctx, date(2026, 1, 15)); n != 0 {
        t.Errorf("OccupiedRooms(Jan 15) = %d, want 0", n)
    }
    if n, _ := w.reservationSvc.CheckInsOn(ctx, date(2026, 1, 12)); n != 1 {
        t.Errorf("CheckInsOn(Jan 12) = %d, want 1", n)
    }
    if n, _ := w.reservationSvc.CheckOutsOn(ctx, date(2026, 1, 15)); n != 1 {
        t.Errorf("CheckOutsOn(Jan 15) = %d, want 1", n)
    }
}
