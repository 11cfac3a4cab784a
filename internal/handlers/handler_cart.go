package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homevista/homevista_backend/internal/apperrors"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/middleware"
)

// cartHandler handles HTTP requests for the shopping cart and orders.
type cartHandler struct {
	cartService portssvc.CartSvcFacade
}

func newCartHandler(cs portssvc.CartSvcFacade) *cartHandler {
	return &cartHandler{
		cartService: cs,
	}
}

// registerCartRoutes registers cart and order routes. Everything here is
// scoped to the authenticated user.
func registerCartRoutes(rg *gin.RouterGroup, cartService portssvc.CartSvcFacade) {
	h := newCartHandler(cartService)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.POST("/items", h.addItem)
		cart.PUT("/items/:id", h.updateItemQuantity)
		cart.DELETE("/items/:id", h.removeItem)
		cart.POST("/checkout", h.checkout)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
	}
}

// getCart godoc
// @Summary Get the current cart
// @Description Retrieves the authenticated user's cart items with the computed total
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cart [get]
func (h *cartHandler) getCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get cart from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve cart"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(items))
}

// addItem godoc
// @Summary Add a property to the cart
// @Description Adds a property to the cart at its current listing price. Adding an already-carted property bumps its quantity instead.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemRequest true "Cart item details"
// @Success 201 {object} dto.CartItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive property"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cart/items [post]
func (h *cartHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to add cart item in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add item to cart"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCartItemResponse(item))
}

// updateItemQuantity godoc
// @Summary Update a cart item's quantity
// @Description Changes the quantity of an item in the authenticated user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param item body dto.UpdateCartItemRequest true "New quantity"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cart/items/{id} [put]
func (h *cartHandler) updateItemQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartItemID := c.Param("id")

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.cartService.UpdateItemQuantity(c.Request.Context(), cartItemID, req.Quantity, userID); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cart item not found"})
			return
		}
		logger.Error("Failed to update cart item in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update cart item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// removeItem godoc
// @Summary Remove a cart item
// @Description Removes an item from the authenticated user's cart
// @Tags cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cart/items/{id} [delete]
func (h *cartHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartItemID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), cartItemID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cart item not found"})
			return
		}
		logger.Error("Failed to remove cart item in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove cart item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// checkout godoc
// @Summary Checkout the cart
// @Description Snapshots the cart into an order, computes the total from the stored unit prices, and empties the cart in the same transaction
// @Tags cart
// @Produce json
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Empty cart"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cart/checkout [post]
func (h *cartHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.cartService.Checkout(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to checkout cart in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to checkout"})
		return
	}

	logger.Info("Order placed", slog.String("order_id", order.OrderID), slog.String("total", order.Total.String()))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List the user's orders
// @Description Retrieves the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *cartHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.cartService.ListOrders(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	orderResponses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		orderResponses[i] = dto.ToOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: orderResponses})
}

// getOrder godoc
// @Summary Get an order by ID
// @Description Retrieves one of the authenticated user's orders. Orders belonging to other users are reported as not found.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *cartHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.cartService.GetOrderByID(c.Request.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to get order from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
