package cart

import (
	"testing"

	"tripatlas/models"
)

func TestCheckoutTotal(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name  string
		items []models.CartItem
		want  models.CartTotal
	}{
		{
			name: "flat tax and free shipping",
			items: []models.CartItem{
				{ProductID: "honey", UnitPrice: 1000, Quantity: 2},
				{ProductID: "shawl", UnitPrice: 500, Quantity: 1},
			},
			want: models.CartTotal{Subtotal: 2500, Tax: 450, Shipping: 0, Total: 2950},
		},
		{
			name:  "empty cart",
			items: nil,
			want:  models.CartTotal{},
		},
		{
			name: "non-positive quantities contribute nothing",
			items: []models.CartItem{
				{ProductID: "honey", UnitPrice: 1000, Quantity: 0},
				{ProductID: "shawl", UnitPrice: 500, Quantity: -2},
				{ProductID: "tea", UnitPrice: 200, Quantity: 1},
			},
			want: models.CartTotal{Subtotal: 200, Tax: 36, Shipping: 0, Total: 236},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.CheckoutTotal(tt.items); got != tt.want {
				t.Errorf("CheckoutTotal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
