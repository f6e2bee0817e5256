package handlers

import (
	"net/http"

	"tripatlas/models"
	"tripatlas/services/cart"
	"tripatlas/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the marketplace checkout calculator.
type CartHandler struct {
	Calculator *cart.Calculator
}

func NewCartHandler(calc *cart.Calculator) *CartHandler {
	return &CartHandler{Calculator: calc}
}

// Checkout handles POST /api/cart/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	var input struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Calculator.CheckoutTotal(input.Items))
}
