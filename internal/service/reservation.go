package service

import (
    "context"
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// ReservationService owns the reservation state machine and keeps room
// status synchronized with reservation transitions.  Valid transitions:
//
//	CONFIRMED  --check-in-->  CHECKED_IN   (room -> OCCUPIED)
//	CHECKED_IN --check-out--> CHECKED_OUT  (room -> post-checkout status)
//	CONFIRMED  --cancel-->    CANCELLED
//	CHECKED_IN --cancel-->    CANCELLED    (room released)
//
// Creating a reservation does not touch the room: a CONFIRMED
// reservation is a future claim, not an occupancy.
//
// Create, check-in, check-out and cancel are serialized per room number
// so the availability check and the following write cannot interleave
// with another booking for the same room.
type ReservationService struct {
    reservations ReservationStore
    rooms        RoomStore
    guests       GuestStore
    availability *RoomService

    // postCheckout is the room status applied when a stay completes.
    // AVAILABLE rebooks immediately; MAINTENANCE forces a cleaning pass
    // before the room re-enters the catalog.
    postCheckout model.RoomStatus

    mu        sync.Mutex
    roomLocks map[int]*sync.Mutex
}

// NewReservationService constructs a ReservationService.  postCheckout
// must be RoomAvailable or RoomMaintenance; anything else falls back to
// RoomAvailable.
func NewReservationService(reservations ReservationStore, rooms RoomStore, guests GuestStore, availability *RoomService, postCheckout model.RoomStatus) *ReservationService {
    if postCheckout != model.RoomMaintenance {
        postCheckout = model.RoomAvailable
    }
    return &ReservationService{
        reservations: reservations,
        rooms:        rooms,
        guests:       guests,
        availability: availability,
        postCheckout: postCheckout,
        roomLocks:    make(map[int]*sync.Mutex),
    }
}

// lockRoom returns the mutex serializing mutations for one room,
// creating it on first use.  Callers must Lock and Unlock it around the
// whole check-then-act sequence.
func (s *ReservationService) lockRoom(number int) *sync.Mutex {
    s.mu.Lock()
    defer s.mu.Unlock()
    l, ok := s.roomLocks[number]
    if !ok {
        l = &sync.Mutex{}
        s.roomLocks[number] = l
    }
    return l
}

// Create books the room for the guest over [checkIn, checkOut) and
// returns the new CONFIRMED reservation.  The caller guarantees
// checkIn < checkOut.  Returns ErrGuestNotFound or ErrRoomNotFound for
// missing references and ErrRoomUnavailable when the range conflicts
// with an existing reservation or the room cannot host a new stay.
func (s *ReservationService) Create(ctx context.Context, guestID string, roomNumber int, checkIn, checkOut time.Time) (*model.Reservation, error) {
    checkIn = model.DateOf(checkIn)
    checkOut = model.DateOf(checkOut)

    if _, err := s.guests.FindByID(ctx, guestID); err != nil {
        return nil, err
    }
    if _, err := s.rooms.FindByNumber(ctx, roomNumber); err != nil {
        return nil, err
    }

    lock := s.lockRoom(roomNumber)
    lock.Lock()
    defer lock.Unlock()

    ok, err := s.availability.IsAvailable(ctx, roomNumber, checkIn, checkOut)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrRoomUnavailable
    }

    res := &model.Reservation{
        ID:         uuid.New().String(),
        GuestID:    guestID,
        RoomNumber: roomNumber,
        CheckIn:    checkIn,
        CheckOut:   checkOut,
        Status:     model.ReservationConfirmed,
    }
    if err := s.reservations.Create(ctx, res); err != nil {
        return nil, err
    }
    return res, nil
}

// CheckIn transitions a CONFIRMED reservation to CHECKED_IN and its room
// to OCCUPIED.  Both writes happen as one unit of work.  Returns
// ErrInvalidTransition when the reservation is not CONFIRMED.
func (s *ReservationService) CheckIn(ctx context.Context, reservationID string) (*model.Reservation, error) {
    res, err := s.reservations.FindByID(ctx, reservationID)
    if err != nil {
        return nil, err
    }

    lock := s.lockRoom(res.RoomNumber)
    lock.Lock()
    defer lock.Unlock()

    if res.Status != model.ReservationConfirmed {
        return nil, ErrInvalidTransition
    }
    if err := s.reservations.UpdateStatusWithRoom(ctx, res.ID, model.ReservationCheckedIn, res.RoomNumber, model.RoomOccupied); err != nil {
        return nil, err
    }
    res.Status = model.ReservationCheckedIn
    return res, nil
}

// CheckOut transitions a CHECKED_IN reservation to CHECKED_OUT and
// releases the room to the operator's post-checkout status.  Returns
// ErrInvalidTransition when the reservation is not CHECKED_IN.
func (s *ReservationService) CheckOut(ctx context.Context, reservationID string) (*model.Reservation, error) {
    res, err := s.reservations.FindByID(ctx, reservationID)
    if err != nil {
        return nil, err
    }

    lock := s.lockRoom(res.RoomNumber)
    lock.Lock()
    defer lock.Unlock()

    if res.Status != model.ReservationCheckedIn {
        return nil, ErrInvalidTransition
    }
    if err := s.reservations.UpdateStatusWithRoom(ctx, res.ID, model.ReservationCheckedOut, res.RoomNumber, s.postCheckout); err != nil {
        return nil, err
    }
    res.Status = model.ReservationCheckedOut
    return res, nil
}

// Cancel marks a reservation CANCELLED.  A missing reservation is
// treated as success so the operation is idempotent.  Cancelling a
// CHECKED_IN reservation releases its room; cancelling a CHECKED_OUT
// reservation is rejected, since a completed stay is immutable.
func (s *ReservationService) Cancel(ctx context.Context, reservationID string) error {
    res, err := s.reservations.FindByID(ctx, reservationID)
    if err != nil {
        if errors.Is(err, repository.ErrReservationNotFound) {
            return nil
        }
        return err
    }

    lock := s.lockRoom(res.RoomNumber)
    lock.Lock()
    defer lock.Unlock()

    switch res.Status {
    case model.ReservationCancelled:
        return nil
    case model.ReservationCheckedOut:
        return ErrInvalidTransition
    case model.ReservationCheckedIn:
        return s.reservations.UpdateStatusWithRoom(ctx, res.ID, model.ReservationCancelled, res.RoomNumber, model.RoomAvailable)
    default:
        return s.reservations.UpdateStatus(ctx, res.ID, model.ReservationCancelled)
    }
}

// Get returns a reservation by id.
func (s *ReservationService) Get(ctx context.Context, reservationID string) (*model.Reservation, error) {
    return s.reservations.FindByID(ctx, reservationID)
}

// All returns every reservation.
func (s *ReservationService) All(ctx context.Context) ([]model.Reservation, error) {
    return s.reservations.FindAll(ctx)
}

// ByGuest returns the reservations booked for one guest.
func (s *ReservationService) ByGuest(ctx context.Context, guestID string) ([]model.Reservation, error) {
    return s.reservations.FindByGuest(ctx, guestID)
}

// Guest resolves a guest record by id.
func (s *ReservationService) Guest(ctx context.Context, guestID string) (*model.Guest, error) {
    return s.guests.FindByID(ctx, guestID)
}

// OccupiedRooms counts non-cancelled reservations whose [checkIn,
// checkOut) range contains the given date.
func (s *ReservationService) OccupiedRooms(ctx context.Context, onDate time.Time) (int, error) {
    onDate = model.DateOf(onDate)
    all, err := s.reservations.FindAll(ctx)
    if err != nil {
        return 0, err
    }
    n := 0
    for i := range all {
        r := &all[i]
        if r.Status != model.ReservationCancelled && r.Covers(onDate) {
            n++
        }
    }
    return n, nil
}

// CheckInsOn counts CONFIRMED reservations whose check-in date equals
// the given date: the arrivals the front desk expects.
func (s *ReservationService) CheckInsOn(ctx context.Context, date time.Time) (int, error) {
    date = model.DateOf(date)
    all, err := s.reservations.FindAll(ctx)
    if err != nil {
        return 0, err
    }
    n := 0
    for i := range all {
        if all[i].Status == model.ReservationConfirmed && all[i].CheckIn.Equal(date) {
            n++
        }
    }
    return n, nil
}

// CheckOutsOn counts CHECKED_IN reservations whose check-out date equals
// the given date: the departures the front desk expects.
func (s *ReservationService) CheckOutsOn(ctx context.Context, date time.Time) (int, error) {
    date = model.DateOf(date)
    all, err := s.reservations.FindAll(ctx)
    if err != nil {
        return 0, err
    }
    n := 0
    for i := range all {
        if all[i].Status == model.ReservationCheckedIn && all[i].CheckOut.Equal(date) {
            n++
        }
    }
    return n, nil
}

// NumberOfNights returns the stay length of a reservation in whole
// nights, unclamped.  Billing applies its own one-night minimum.
func (s *ReservationService) NumberOfNights(ctx context.Context, reservationID string) (int, error) {
    res, err := s.reservations.FindByID(ctx, reservationID)
    if err != nil {
        return 0, err
    }
    return res.Nights(), nil
}
