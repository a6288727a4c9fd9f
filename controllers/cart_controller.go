package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frrrancoelgori-ui/joyeria/middleware"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// session resolves the caller's cart session, rejecting requests that
// carry no X-Session-ID header.
func (cc *CartController) session(c *gin.Context) (string, bool) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
		return "", false
	}
	return sessionID, true
}

func (cc *CartController) GetCart(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cc.cart.GetCart(sessionID))
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (cc *CartController) AddToCart(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, svcErr := cc.cart.AddToCart(sessionID, req.ProductID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, svcErr := cc.cart.UpdateQuantity(sessionID, c.Param("productId"), req.Quantity)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}

	cart, svcErr := cc.cart.RemoveFromCart(sessionID, c.Param("productId"))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}
	cc.cart.ClearCart(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

type checkoutRequest struct {
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

// Checkout converts the cart into a completed sale and empties it.
func (cc *CartController) Checkout(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}

	var req checkoutRequest
	// The body is optional: guests can check out without an email.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sale, svcErr := cc.cart.Checkout(sessionID, req.CustomerEmail)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// WhatsAppLink builds the pre-filled WhatsApp handoff URL for the cart.
func (cc *CartController) WhatsAppLink(c *gin.Context) {
	sessionID, ok := cc.session(c)
	if !ok {
		return
	}

	link, svcErr := cc.cart.WhatsAppLink(sessionID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}
