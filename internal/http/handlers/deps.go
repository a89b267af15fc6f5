package handlers

import (
	"vitrine/internal/catalog"
	"vitrine/internal/kv"
)

type Deps struct {
	LandingHandler  *LandingHandler
	StoreHandler    *StoreHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
}

func NewDeps(client *catalog.Client, store kv.Store) *Deps {
	return &Deps{
		LandingHandler:  &LandingHandler{},
		StoreHandler:    &StoreHandler{Catalog: client, KV: store},
		ProductHandler:  &ProductHandler{Catalog: client, KV: store},
		CartHandler:     &CartHandler{Catalog: client, KV: store},
		CheckoutHandler: &CheckoutHandler{Catalog: client, KV: store},
	}
}
