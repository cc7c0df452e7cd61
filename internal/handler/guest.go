package handler

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// GuestHandler manages the guest registry.
type GuestHandler struct {
    Guests *repository.GuestRepo
}

func NewGuestHandler(guests *repository.GuestRepo) *GuestHandler {
    return &GuestHandler{Guests: guests}
}

type guestReq struct {
    FullName string  `json:"full_name" validate:"required,min=2"`
    Email    string  `json:"email" validate:"required,email"`
    Phone    *string `json:"phone"`
}

// Create registers a new guest and assigns it an id.
func (h *GuestHandler) Create(c echo.Context) error {
    var req guestReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    guest := &model.Guest{
        ID:       uuid.New().String(),
        FullName: strings.TrimSpace(req.FullName),
        Email:    strings.ToLower(strings.TrimSpace(req.Email)),
        Phone:    req.Phone,
    }
    if err := h.Guests.Create(ctx, guest); err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusCreated, guest)
}

// Get returns one guest by id.
func (h *GuestHandler) Get(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    guest, err := h.Guests.FindByID(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, guest)
}

// List returns every registered guest.
func (h *GuestHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    guests, err := h.Guests.FindAll(ctx)
    if err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"guests": guests, "count": len(guests)})
}

// Update replaces a guest's contact details.
func (h *GuestHandler) Update(c echo.Context) error {
    var req guestReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    guest, err := h.Guests.FindByID(ctx, c.Param("id"))
    if err != nil {
        return domainError(c, err)
    }
    guest.FullName = strings.TrimSpace(req.FullName)
    guest.Email = strings.ToLower(strings.TrimSpace(req.Email))
    guest.Phone = req.Phone
    if err := h.Guests.Update(ctx, guest); err != nil {
        return domainError(c, err)
    }
    return c.JSON(http.StatusOK, guest)
}

// Delete removes a guest record.  Admin only.
func (h *GuestHandler) Delete(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Guests.Delete(ctx, c.Param("id")); err != nil {
        return domainError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
