package handler

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/queue"
    "github.com/iliyamo/hotel-reservation/internal/service"
)

// ReservationHandler drives the reservation lifecycle over HTTP.
type ReservationHandler struct {
    Reservations *service.ReservationService
    Rooms        *service.RoomService
    Payments     *service.PaymentService
}

func NewReservationHandler(res *service.ReservationService, rooms *service.RoomService, pay *service.PaymentService) *ReservationHandler {
    return &ReservationHandler{Reservations: res, Rooms: rooms, Payments: pay}
}

type createReservationReq struct {
    GuestID    string `json:"guest_id" validate:"required,uuid4"`
    RoomNumber int    `json:"room_number" validate:"required,gt=0"`
    CheckIn    string `json:"check_in" validate:"required"`
    CheckOut   string `json:"check_out" validate:"required"`
}

type checkOutReq struct {
    Method string `json:"method"` // CASH | CARD, defaults to CASH
}

type checkOutResp struct {
    Reservation *model.Reservation `json:"reservation"`
    Payment     *model.Payment     `json:"payment"`
    Bill        service.Bill       `json:"bill"`
}

// Create books a room for a guest.  Dates arrive as YYYY-MM-DD and the
// check-in day must precede the check-out day.  On success a
// confirmation event is published for downstream consumers.
func (h *ReservationHandler) Create(c echo.Context) error {
    var req createReservationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    checkIn, err := parseDate(req.CheckIn)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
    }
    checkOut, err := parseDate(req.CheckOut)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
    }
    if !checkIn.Before(checkOut) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be before check_out"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    res, err := h.Reservations.Create(ctx, req.GuestID, req.RoomNumber, checkIn, checkOut)
    if err != nil {
        return domainError(c, err)
    }

    go h.publishConfirmed(res)

    return c.JSON(http.StatusCreated, res)
}

// publishConfirmed emits a reservation.confirmed event on a best-effort
// basis.  A broker outage must never fail the booking that already
// committed.
func (h *ReservationHandler) publishConfirmed(res *model.Reservation) {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    event := queue.ReservationConfirmedEvent{
        ReservationID: res.ID,
        GuestID:       res.GuestID,
        RoomNumber:    res.RoomNumber,
        CheckIn:       res.CheckIn.Format(dateLayout),
        CheckOut:      res.CheckOut.Format(dateLayout),
        Nights:        res.Nights(),
        ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if room, err := h.Rooms.GetRoom(ctx, res.RoomNumber); err == nil {
        event.RoomType = string(room.Type)
        event.NightlyRate = room.PricePerNight
    }
    if guest, err := h.Reservations.Guest(ctx, res.GuestID); err == nil {
        event.GuestName = guest.FullName
    }
    _ = queue.PublishReservationConfirmed(ctx, event)
}

// Get returns one reservation.
func (h *ReservationHandler) Get(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    res, err := h.Reservations.Get(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, res)
}

// List returns all reservations, optionally filtered by ?guest_id.
func (h *ReservationHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    var (
        out []model.Reservation
        err error
    )
    if gid := c.QueryParam("guest_id"); gid != "" {
        out, err = h.Reservations.ByGuest(ctx, gid)
    } else {
        out, err = h.Reservations.All(ctx)
    }
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": out, "count": len(out)})
}

// ByGuest returns one guest's reservations.
func (h *ReservationHandler) ByGuest(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    out, err := h.Reservations.ByGuest(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": out, "count": len(out)})
}

// CheckIn transitions a confirmed reservation to CHECKED_IN and marks
// the room occupied.
func (h *ReservationHandler) CheckIn(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    res, err := h.Reservations.CheckIn(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, res)
}

// CheckOut completes a stay: the reservation moves to CHECKED_OUT, the
// room is released, and a payment for the full bill is recorded.
func (h *ReservationHandler) CheckOut(c echo.Context) error {
    var req checkOutReq
    _ = c.Bind(&req)
    method := model.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.Method)))
    switch method {
    case model.PaymentCash, model.PaymentCard:
    case "":
        method = model.PaymentCash
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "method must be CASH or CARD"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    res, err := h.Reservations.CheckOut(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    room, err := h.Rooms.GetRoom(ctx, res.RoomNumber)
    if err != nil {
        return domainError(c, err)
    }
    payment, bill, err := h.Payments.RecordCheckout(ctx, res, room, method)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, checkOutResp{Reservation: res, Payment: payment, Bill: bill})
}

// Cancel voids a reservation.  Cancelling an already cancelled or
// unknown reservation is a no-op.
func (h *ReservationHandler) Cancel(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Reservations.Cancel(ctx, c.Param("id")); err != nil {
        return domainError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
