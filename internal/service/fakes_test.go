package service

import (
    "context"
    "sync"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// In-memory store fakes.  They mirror the repository semantics closely
// enough for the domain tests: sentinel errors for missing rows and an
// atomic reservation+room write in UpdateStatusWithRoom.

type fakeRoomStore struct {
    mu    sync.Mutex
    rooms map[int]*model.Room
}

func newFakeRoomStore() *fakeRoomStore {
    return &fakeRoomStore{rooms: make(map[int]*model.Room)}
}

func (f *fakeRoomStore) FindByNumber(_ context.Context, number int) (*model.Room, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    room, ok := f.rooms[number]
    if !ok {
        return nil, repository.ErrRoomNotFound
    }
    cp := *room
    return &cp, nil
}

func (f *fakeRoomStore) FindAll(_ context.Context) ([]model.Room, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    out := make([]model.Room, 0, len(f.rooms))
    for _, room := range f.rooms {
        out = append(out, *room)
    }
    return out, nil
}

func (f *fakeRoomStore) Create(_ context.Context, room *model.Room) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if _, ok := f.rooms[room.Number]; ok {
        return repository.ErrRoomExists
    }
    cp := *room
    f.rooms[room.Number] = &cp
    return nil
}

func (f *fakeRoomStore) Save(_ context.Context, room *model.Room) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if _, ok := f.rooms[room.Number]; !ok {
        return repository.ErrRoomNotFound
    }
    cp := *room
    f.rooms[room.Number] = &cp
    return nil
}

func (f *fakeRoomStore) UpdateStatus(_ context.Context, number int, status model.RoomStatus) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    room, ok := f.rooms[number]
    if !ok {
        return repository.ErrRoomNotFound
    }
    room.Status = status
    return nil
}

func (f *fakeRoomStore) Delete(_ context.Context, number int) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if _, ok := f.rooms[number]; !ok {
        return repository.ErrRoomNotFound
    }
    delete(f.rooms, number)
    return nil
}

type fakeReservationStore struct {
    mu           sync.Mutex
    reservations map[string]*model.Reservation
    rooms        *fakeRoomStore // for the paired status write

    createErr error // when set, Create fails without writing
}

func newFakeReservationStore(rooms *fakeRoomStore) *fakeReservationStore {
    return &fakeReservationStore{reservations: make(map[string]*model.Reservation), rooms: rooms}
}

func (f *fakeReservationStore) FindByID(_ context.Context, id string) (*model.Reservation, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    res, ok := f.reservations[id]
    if !ok {
        return nil, repository.ErrReservationNotFound
    }
    cp := *res
    return &cp, nil
}

func (f *fakeReservationStore) FindAll(_ context.Context) ([]model.Reservation, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    out := make([]model.Reservation, 0, len(f.reservations))
    for _, res := range f.reservations {
        out = append(out, *res)
    }
    return out, nil
}

func (f *fakeReservationStore) FindByGuest(_ context.Context, guestID string) ([]model.Reservation, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    var out []model.Reservation
    for _, res := range f.reservations {
        if res.GuestID == guestID {
            out = append(out, *res)
        }
    }
    return out, nil
}

func (f *fakeReservationStore) FindByRoom(_ context.Context, roomNumber int) ([]model.Reservation, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    var out []model.Reservation
    for _, res := range f.reservations {
        if res.RoomNumber == roomNumber {
            out = append(out, *res)
        }
    }
    return out, nil
}

func (f *fakeReservationStore) Create(_ context.Context, res *model.Reservation) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.createErr != nil {
        return f.createErr
    }
    cp := *res
    f.reservations[res.ID] = &cp
    return nil
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, id string, status model.ReservationStatus) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    res, ok := f.reservations[id]
    if !ok {
        return repository.ErrReservationNotFound
    }
    res.Status = status
    return nil
}

func (f *fakeReservationStore) UpdateStatusWithRoom(ctx context.Context, id string, status model.ReservationStatus, roomNumber int, roomStatus model.RoomStatus) error {
    f.mu.Lock()
    res, ok := f.reservations[id]
    if !ok {
        f.mu.Unlock()
        return repository.ErrReservationNotFound
    }
    res.Status = status
    f.mu.Unlock()
    return f.rooms.UpdateStatus(ctx, roomNumber, roomStatus)
}

type fakeGuestStore struct {
    mu     sync.Mutex
    guests map[string]*model.Guest
}

func newFakeGuestStore() *fakeGuestStore {
    return &fakeGuestStore{guests: make(map[string]*model.Guest)}
}

func (f *fakeGuestStore) FindByID(_ context.Context, id string) (*model.Guest, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    g, ok := f.guests[id]
    if !ok {
        return nil, repository.ErrGuestNotFound
    }
    cp := *g
    return &cp, nil
}

func (f *fakeGuestStore) add(g model.Guest) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.guests[g.ID] = &g
}

type fakePaymentStore struct {
    mu       sync.Mutex
    payments []model.Payment
}

func newFakePaymentStore() *fakePaymentStore { return &fakePaymentStore{} }

func (f *fakePaymentStore) Create(_ context.Context, payment *model.Payment) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.payments = append(f.payments, *payment)
    return nil
}

func (f *fakePaymentStore) FindByID(_ context.Context, id string) (*model.Payment, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    for i := range f.payments {
        if f.payments[i].ID == id {
            cp := f.payments[i]
            return &cp, nil
        }
    }
    return nil, repository.ErrPaymentNotFound
}

func (f *fakePaymentStore) FindAll(_ context.Context) ([]model.Payment, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    out := make([]model.Payment, len(f.payments))
    copy(out, f.payments)
    return out, nil
}

func (f *fakePaymentStore) RevenueOn(_ context.Context, day time.Time) (float64, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    day = model.DateOf(day)
    var sum float64
    for _, p := range f.payments {
        if model.DateOf(p.PaidAt).Equal(day) {
            sum += p.Amount
        }
    }
    return sum, nil
}

// testWorld bundles a fully wired in-memory service stack.
type testWorld struct {
    rooms        *fakeRoomStore
    reservations *fakeReservationStore
    guests       *fakeGuestStore
    payments     *fakePaymentStore

    roomSvc        *RoomService
    reservationSvc *ReservationService
    paymentSvc     *PaymentService
}

func newTestWorld(postCheckout model.RoomStatus) *testWorld {
    rooms := newFakeRoomStore()
    reservations := newFakeReservationStore(rooms)
    guests := newFakeGuestStore()
    payments := newFakePaymentStore()

    roomSvc := NewRoomService(rooms, reservations)
    return &testWorld{
        rooms:          rooms,
        reservations:   reservations,
        guests:         guests,
        payments:       payments,
        roomSvc:        roomSvc,
        reservationSvc: NewReservationService(reservations, rooms, guests, roomSvc, postCheckout),
        paymentSvc:     NewPaymentService(payments),
    }
}

func (w *testWorld) addRoom(number int, status model.RoomStatus, rate float64) {
    w.rooms.mu.Lock()
    defer w.rooms.mu.Unlock()
    w.rooms.rooms[number] = &model.Room{
        Number:        number,
        Capacity:      2,
        Type:          model.RoomTypeDouble,
        PricePerNight: rate,
        Status:        status,
    }
}

func (w *testWorld) addGuest(id string) {
    w.guests.add(model.Guest{ID: id, FullName: "Test Guest", Email: id + "@example.com"})
}

func date(y int, m time.Month, d int) time.Time {
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
