package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/service"
)

// RoomHandler exposes room inventory management over HTTP.
type RoomHandler struct {
    Rooms *service.RoomService
}

func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
    return &RoomHandler{Rooms: rooms}
}

type createRoomReq struct {
    Number        int     `json:"number" validate:"required,gt=0"`
    Capacity      int     `json:"capacity" validate:"required,gt=0"`
    Type          string  `json:"type" validate:"required,oneof=SINGLE DOUBLE SUITE"`
    PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}

type maintenanceReq struct {
    UnderMaintenance bool `json:"under_maintenance"`
}

// Create registers a new room.  The room starts AVAILABLE regardless of
// the payload.
func (h *RoomHandler) Create(c echo.Context) error {
    var req createRoomReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    room := &model.Room{
        Number:        req.Number,
        Capacity:      req.Capacity,
        Type:          model.RoomType(req.Type),
        PricePerNight: req.PricePerNight,
    }
    if err := h.Rooms.AddRoom(ctx, room); err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusCreated, room)
}

// Get returns one room by number.
func (h *RoomHandler) Get(c echo.Context) error {
    number, err := strconv.Atoi(c.Param("number"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    room, err := h.Rooms.GetRoom(ctx, number)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, room)
}

// List returns the whole inventory, or only the rooms free for a stay
// when both ?check_in and ?check_out are supplied.
func (h *RoomHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    inStr, outStr := c.QueryParam("check_in"), c.QueryParam("check_out")
    if inStr != "" || outStr != "" {
        checkIn, err := parseDate(inStr)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
        }
        checkOut, err := parseDate(outStr)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
        }
        if !checkIn.Before(checkOut) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be before check_out"})
        }
        rooms, err := h.Rooms.AvailableRooms(ctx, checkIn, checkOut)
        if err != nil {
            return domainError(c, err)
        }
        return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
    }

    rooms, err := h.Rooms.AllRooms(ctx)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// Available returns the rooms bookable for a stay.  Both ?check_in and
// ?check_out are required.
func (h *RoomHandler) Available(c echo.Context) error {
    checkIn, err := parseDate(c.QueryParam("check_in"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
    }
    checkOut, err := parseDate(c.QueryParam("check_out"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
    }
    if !checkIn.Before(checkOut) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be before check_out"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    rooms, err := h.Rooms.AvailableRooms(ctx, checkIn, checkOut)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// Maintenance places a room under maintenance or returns it to service.
func (h *RoomHandler) Maintenance(c echo.Context) error {
    number, err := strconv.Atoi(c.Param("number"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
    }
    var req maintenanceReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    room, err := h.Rooms.SetMaintenance(ctx, number, req.UnderMaintenance)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, room)
}

// Delete removes a room from the inventory.  Admin only.
func (h *RoomHandler) Delete(c echo.Context) error {
    number, err := strconv.Atoi(c.Param("number"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Rooms.DeleteRoom(ctx, number); err != nil {
        return domainError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
