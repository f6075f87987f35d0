// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"workshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ServiceItemView represents a single billed service line in the read model.
type ServiceItemView struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unitValue"`
	Discount    decimal.Decimal `json:"discount"`
	Addition    decimal.Decimal `json:"addition"`
	Total       decimal.Decimal `json:"total"`
}

// EquipmentView describes the serviced equipment in the read model.
type EquipmentView struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	Brand        string `json:"brand"`
	SerialNumber string `json:"serialNumber"`
	Voltage      string `json:"voltage"`
	Accessories  string `json:"accessories"`
}

// ServiceOrderDetails is the full read model of a single service order,
// including its items and the customer's display name.
type ServiceOrderDetails struct {
	ID                   kernel.UUID       `json:"id"`
	OrderNumber          int64             `json:"orderNumber"`
	CustomerID           kernel.UUID       `json:"customerId"`
	CustomerName         string            `json:"customerName"`
	Equipment            EquipmentView     `json:"equipment"`
	Notes                string            `json:"notes"`
	Warranty             bool              `json:"warranty"`
	IsReturn             bool              `json:"isReturn"`
	Status               string            `json:"status"`
	FinancialStatus      string            `json:"financialStatus"`
	EntryDate            time.Time         `json:"entryDate"`
	ApprovalDate         *time.Time        `json:"approvalDate"`
	ExpectedDeliveryDate *time.Time        `json:"expectedDeliveryDate"`
	DeliveryDate         *time.Time        `json:"deliveryDate"`
	PaymentType          string            `json:"paymentType"`
	InstallmentCount     int               `json:"installmentCount"`
	PaidInstallments     int               `json:"paidInstallments"`
	TotalDiscount        decimal.Decimal   `json:"totalDiscount"`
	TotalAddition        decimal.Decimal   `json:"totalAddition"`
	ServicesSum          decimal.Decimal   `json:"servicesSum"`
	TotalAmountLeft      decimal.Decimal   `json:"totalAmountLeft"`
	TotalAmountPaid      decimal.Decimal   `json:"totalAmountPaid"`
	Items                []ServiceItemView `json:"items"`
}

// ServiceOrderSummary is the compact read model used by list and search
// results. Items are omitted; only the headline figures are carried.
type ServiceOrderSummary struct {
	ID                   kernel.UUID     `json:"id"`
	OrderNumber          int64           `json:"orderNumber"`
	CustomerID           kernel.UUID     `json:"customerId"`
	CustomerName         string          `json:"customerName"`
	EquipmentName        string          `json:"equipmentName"`
	EquipmentBrand       string          `json:"equipmentBrand"`
	Warranty             bool            `json:"warranty"`
	Status               string          `json:"status"`
	FinancialStatus      string          `json:"financialStatus"`
	EntryDate            time.Time       `json:"entryDate"`
	ExpectedDeliveryDate *time.Time      `json:"expectedDeliveryDate"`
	TotalAmountLeft      decimal.Decimal `json:"totalAmountLeft"`
	TotalAmountPaid      decimal.Decimal `json:"totalAmountPaid"`
}

// PagedServiceOrders wraps a page of summaries together with the total
// number of rows matching the query, so clients can render pagination.
type PagedServiceOrders struct {
	Data  []ServiceOrderSummary `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
