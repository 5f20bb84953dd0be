package models

import "time"

// SaleItemType distinguishes crop sales from livestock sales.
type SaleItemType string

const (
	SaleItemCrop      SaleItemType = "crop"
	SaleItemLivestock SaleItemType = "livestock"
)

// PaymentStatus enumerates settlement states of a sale.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// Sale captures one sales transaction. Amount is fixed at creation time as
// Quantity * Price and never recomputed afterwards. Sales are immutable once
// created; the only mutation path is deletion.
type Sale struct {
	ID            int64         `json:"id"`
	ItemType      SaleItemType  `json:"itemType"`
	ItemName      string        `json:"itemName"`
	Quantity      float64       `json:"quantity"`
	Price         float64       `json:"price"` // per unit
	Amount        float64       `json:"amount"`
	Buyer         string        `json:"buyer"`
	Date          time.Time     `json:"date"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// ValidSaleItemType reports whether the value is a member of the SaleItemType enum.
func ValidSaleItemType(t SaleItemType) bool {
	return t == SaleItemCrop || t == SaleItemLivestock
}

// ValidPaymentStatus reports whether the value is a member of the PaymentStatus enum.
func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentPaid || s == PaymentPending
}
