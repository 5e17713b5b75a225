package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/dto"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/payment"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/service"
)

// HeaderCartID scopes a request to one device's cart, the way the original
// client scoped its cart to one browser's storage.
const HeaderCartID = "X-Cart-ID"

type CartHandler struct {
	svc service.CartService
}

func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	cart := e.Group("/api/cart")
	cart.GET("", h.GetCart)
	cart.DELETE("", h.ClearCart)
	cart.POST("/items", h.AddItem)
	cart.PUT("/items/:type/:id/quantity", h.UpdateQuantity)
	cart.DELETE("/items/:type/:id", h.RemoveItem)
	cart.POST("/trip", h.PlanTrip)
	cart.POST("/checkout", h.Checkout)
}

func cartID(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Request().Header.Get(HeaderCartID))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing X-Cart-ID header")
	}
	return id, nil
}

func itemKey(c echo.Context) (string, models.BookingType, error) {
	typ := models.BookingType(c.Param("type"))
	if !typ.Valid() {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "invalid booking type")
	}
	id := c.Param("id")
	if id == "" {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	return id, typ, nil
}

func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := cartID(c)
	if err != nil {
		return err
	}

	items := h.svc.Items(c.Request().Context(), id)
	return c.JSON(http.StatusOK, dto.ToCartResponse(items))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	id, err := cartID(c)
	if err != nil {
		return err
	}

	var item models.BookingItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	if err := h.svc.Add(ctx, id, item); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItemType),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrNegativePrice):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToCartResponse(h.svc.Items(ctx, id)))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	cart, err := cartID(c)
	if err != nil {
		return err
	}
	itemID, typ, err := itemKey(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	if err := h.svc.UpdateQuantity(ctx, cart, itemID, typ, req.Quantity); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToCartResponse(h.svc.Items(ctx, cart)))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := cartID(c)
	if err != nil {
		return err
	}
	itemID, typ, err := itemKey(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.svc.Remove(ctx, cart, itemID, typ); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToCartResponse(h.svc.Items(ctx, cart)))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	id, err := cartID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Clear(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) PlanTrip(c echo.Context) error {
	id, err := cartID(c)
	if err != nil {
		return err
	}

	var req dto.TripPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	if err := h.svc.PlanTrip(ctx, id, req.Items()); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTripPlan),
			errors.Is(err, service.ErrInvalidItemType),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrNegativePrice):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToCartResponse(h.svc.Items(ctx, id)))
}

func (h *CartHandler) Checkout(c echo.Context) error {
	id, err := cartID(c)
	if err != nil {
		return err
	}

	order, err := h.svc.Checkout(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, payment.ErrInvalidAmount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}
