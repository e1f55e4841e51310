package handlers

import (
	"greenleaf/internal/checkout"
	"greenleaf/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	DealHandler     *DealHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	CheckoutHandler *CheckoutHandler
	AgeGateHandler  *AgeGateHandler
}

func NewDeps(stores *store.Manager, co *checkout.Service) *Deps {
	return &Deps{
		ProductHandler:  &ProductHandler{},
		DealHandler:     &DealHandler{Stores: stores},
		CartHandler:     &CartHandler{Stores: stores},
		WishlistHandler: &WishlistHandler{Stores: stores},
		CheckoutHandler: &CheckoutHandler{Stores: stores, Checkout: co},
		AgeGateHandler:  &AgeGateHandler{},
	}
}
