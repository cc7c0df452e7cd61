package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/service"
)

// DashboardHandler serves the front-desk daily summary.
type DashboardHandler struct {
    Rooms        *service.RoomService
    Reservations *service.ReservationService
    Payments     *service.PaymentService
}

func NewDashboardHandler(rooms *service.RoomService, res *service.ReservationService, pay *service.PaymentService) *DashboardHandler {
    return &DashboardHandler{Rooms: rooms, Reservations: res, Payments: pay}
}

type dashboardResp struct {
    Date             string  `json:"date"`
    AvailableRooms   int     `json:"available_rooms"`
    OccupiedRooms    int     `json:"occupied_rooms"`
    MaintenanceRooms int     `json:"maintenance_rooms"`
    StaysInHouse     int     `json:"stays_in_house"`
    ArrivalsToday    int     `json:"arrivals_today"`
    DeparturesToday  int     `json:"departures_today"`
    RevenueToday     float64 `json:"revenue_today"`
}

// Summary aggregates room counts, expected arrivals and departures, and
// revenue for one day.  The ?date query defaults to today.
func (h *DashboardHandler) Summary(c echo.Context) error {
    day := model.DateOf(time.Now().UTC())
    if q := c.QueryParam("date"); q != "" {
        parsed, err := parseDate(q)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
        }
        day = parsed
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    resp := dashboardResp{Date: day.Format(dateLayout)}

    var err error
    if resp.AvailableRooms, err = h.Rooms.CountByStatus(ctx, model.RoomAvailable); err != nil {
        return domainError(c, err)
    }
    if resp.OccupiedRooms, err = h.Rooms.CountByStatus(ctx, model.RoomOccupied); err != nil {
        return domainError(c, err)
    }
    if resp.MaintenanceRooms, err = h.Rooms.CountByStatus(ctx, model.RoomMaintenance); err != nil {
        return domainError(c, err)
    }
    if resp.StaysInHouse, err = h.Reservations.OccupiedRooms(ctx, day); err != nil {
        return domainError(c, err)
    }
    if resp.ArrivalsToday, err = h.Reservations.CheckInsOn(ctx, day); err != nil {
        return domainError(c, err)
    }
    if resp.DeparturesToday, err = h.Reservations.CheckOutsOn(ctx, day); err != nil {
        return domainError(c, err)
    }
    if resp.RevenueToday, err = h.Payments.RevenueOn(ctx, day); err != nil {
        return domainError(c, err)
    }

    return c.JSON(http.StatusOK, resp)
}

// Payments lists the full payment ledger.
func (h *DashboardHandler) PaymentList(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    payments, err := h.Payments.AllPayments(ctx)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"payments": payments, "count": len(payments)})
}

// PaymentGet returns one ledger entry by id.
func (h *DashboardHandler) PaymentGet(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    payment, err := h.Payments.Payment(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, payment)
}
