package service

import (
    "context"
    "errors"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// RoomService answers availability questions and manages the room
// catalog.  Availability combines the room's own status with an
// interval-overlap scan of the room's reservations: a room that is not
// AVAILABLE right now is never bookable, even for future dates.  That
// is deliberately conservative: a room under maintenance stays
// unbookable until staff clears it, and a room hosting today's guest
// cannot take a second booking until checkout.
type RoomService struct {
    rooms        RoomStore
    reservations ReservationStore
}

// NewRoomService constructs a RoomService over the given stores.
func NewRoomService(rooms RoomStore, reservations ReservationStore) *RoomService {
    return &RoomService{rooms: rooms, reservations: reservations}
}

// IsAvailable reports whether a new reservation may be created for the
// room over the half-open range [checkIn, checkOut).  The caller is
// responsible for ensuring checkIn < checkOut.  A missing room is
// reported as unavailable rather than an error, so callers that only
// want a yes/no answer need no error branching for absent rooms.
func (s *RoomService) IsAvailable(ctx context.Context, roomNumber int, checkIn, checkOut time.Time) (bool, error) {
    room, err := s.rooms.FindByNumber(ctx, roomNumber)
    if err != nil {
        if errors.Is(err, repository.ErrRoomNotFound) {
            return false, nil
        }
        return false, err
    }
    if !room.IsAvailable() {
        return false, nil
    }
    existing, err := s.reservations.FindByRoom(ctx, roomNumber)
    if err != nil {
        return false, err
    }
    for i := range existing {
        r := &existing[i]
        // Cancelled reservations never block, and a completed stay
        // cannot conflict with a future one.
        if !r.Active() {
            continue
        }
        if r.Overlaps(checkIn, checkOut) {
            return false, nil
        }
    }
    return true, nil
}

// AvailableRooms returns every room bookable for the given range, in
// catalog order.
func (s *RoomService) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error) {
    all, err := s.rooms.FindAll(ctx)
    if err != nil {
        return nil, err
    }
    out := make([]model.Room, 0, len(all))
    for _, room := range all {
        ok, err := s.IsAvailable(ctx, room.Number, checkIn, checkOut)
        if err != nil {
            return nil, err
        }
        if ok {
            out = append(out, room)
        }
    }
    return out, nil
}

// CountByStatus returns how many rooms currently carry the given status.
func (s *RoomService) CountByStatus(ctx context.Context, status model.RoomStatus) (int, error) {
    all, err := s.rooms.FindAll(ctx)
    if err != nil {
        return 0, err
    }
    n := 0
    for _, room := range all {
        if room.Status == status {
            n++
        }
    }
    return n, nil
}

// AddRoom registers a new room.  Status defaults to AVAILABLE when unset.
func (s *RoomService) AddRoom(ctx context.Context, room *model.Room) error {
    if room.Status == "" {
        room.Status = model.RoomAvailable
    }
    return s.rooms.Create(ctx, room)
}

// GetRoom returns a room by number.
func (s *RoomService) GetRoom(ctx context.Context, number int) (*model.Room, error) {
    return s.rooms.FindByNumber(ctx, number)
}

// AllRooms returns the full room catalog.
func (s *RoomService) AllRooms(ctx context.Context) ([]model.Room, error) {
    return s.rooms.FindAll(ctx)
}

// DeleteRoom removes a room from the catalog.
func (s *RoomService) DeleteRoom(ctx context.Context, number int) error {
    return s.rooms.Delete(ctx, number)
}

// SetMaintenance toggles a room in or out of maintenance.  A room
// hosting a checked-in guest cannot be sent to maintenance, and only a
// MAINTENANCE room can be cleared back to AVAILABLE.
func (s *RoomService) SetMaintenance(ctx context.Context, number int, under bool) (*model.Room, error) {
    room, err := s.rooms.FindByNumber(ctx, number)
    if err != nil {
        return nil, err
    }
    switch {
    case under && room.Status == model.RoomOccupied:
        return nil, ErrInvalidTransition
    case !under && room.Status != model.RoomMaintenance:
        return nil, ErrInvalidTransition
    }
    target := model.RoomAvailable
    if under {
        target = model.RoomMaintenance
    }
    if err := s.rooms.UpdateStatus(ctx, number, target); err != nil {
        return nil, err
    }
    room.Status = target
    return room, nil
}
