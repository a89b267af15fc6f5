package domain

import "github.com/shopspring/decimal"

// WebsiteConfig is the tenant storefront configuration served by the
// catalog API for one merchant slug.
type WebsiteConfig struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"companyId"`
	Status           string          `json:"status"` // draft | published | unpublished
	TemplateID       string          `json:"templateId"`
	TemplateVersion  string          `json:"templateVersion"`
	StoreName        string          `json:"storeName"`
	StoreDescription string          `json:"storeDescription,omitempty"`
	ContactEmail     string          `json:"contactEmail"`
	ContactPhone     string          `json:"contactPhone,omitempty"`
	Address          string          `json:"address,omitempty"`
	LogoURL          string          `json:"logoUrl,omitempty"`
	PrimaryColor     string          `json:"primaryColor"`
	SecondaryColor   string          `json:"secondaryColor"`
	Slug             string          `json:"slug"`
	BannerURL        string          `json:"bannerUrl,omitempty"`
	HeadingFont      string          `json:"headingFont,omitempty"`
	BodyFont         string          `json:"bodyFont,omitempty"`
	HeroText         string          `json:"heroText,omitempty"`
	FeaturedIDs      []string        `json:"featuredProductIds,omitempty"`
	ShippingPrice    decimal.Decimal `json:"shippingPrice"`
}

// ProductVariant is a concrete purchasable SKU distinguished by its
// attribute combination (e.g. Color=Red, Size=M).
type ProductVariant struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Attributes   map[string]string `json:"attributes"`
	Quantity     int               `json:"quantity"`
	SellingPrice *decimal.Decimal  `json:"sellingPrice,omitempty"`
	ImageURL     string            `json:"imageUrl,omitempty"`
}

type WebsiteProduct struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"productId"`
	CompanyID    string           `json:"companyId"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	CategoryID   string           `json:"categoryId"`
	CategoryName string           `json:"categoryName,omitempty"`
	SellingPrice decimal.Decimal  `json:"sellingPrice"`
	ImageURL     string           `json:"imageUrl,omitempty"`
	ImageURLs    []string         `json:"imageUrls,omitempty"`
	HasVariants  bool             `json:"hasVariants"`
	Variants     []ProductVariant `json:"variants,omitempty"`
	InStock      bool             `json:"inStock"`
	TotalStock   int              `json:"totalStock"`
	IsPublished  bool             `json:"isPublished"`
	IsNew        bool             `json:"isNew,omitempty"`
	IsOnSale     bool             `json:"isOnSale,omitempty"`
	IsFeatured   bool             `json:"isFeatured,omitempty"`
	CreatedAt    string           `json:"createdAt,omitempty"`
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
}

// PublicWebsiteData is the full payload the catalog API returns for a slug.
type PublicWebsiteData struct {
	Config     WebsiteConfig    `json:"config"`
	Products   []WebsiteProduct `json:"products"`
	Categories []Category       `json:"categories"`
}

type OrderItem struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Items           []OrderItem      `json:"items"`
	CustomerNotes   string           `json:"customerNotes,omitempty"`
}

type CreateOrderResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}
