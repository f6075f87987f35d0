package http

import (
	"time"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EquipmentRequest describes the serviced equipment in write requests.
type EquipmentRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	Brand        string `json:"brand"`
	SerialNumber string `json:"serialNumber"`
	Voltage      string `json:"voltage"`
	Accessories  string `json:"accessories"`
}

func (r EquipmentRequest) toDomain() (serviceorder.Equipment, error) {
	return serviceorder.NewEquipment(
		r.Name, r.Model, r.Brand, r.SerialNumber, r.Voltage, r.Accessories,
	)
}

// ServiceItemRequest describes one billed service line in write requests.
type ServiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unitValue"`
	Discount    decimal.Decimal `json:"discount"`
	Addition    decimal.Decimal `json:"addition"`
}

func itemsToDomain(requests []ServiceItemRequest) ([]serviceorder.ServiceItem, error) {
	items := make([]serviceorder.ServiceItem, 0, len(requests))
	for _, r := range requests {
		item, err := serviceorder.NewServiceItem(
			r.Description, r.Quantity, r.UnitValue, r.Discount, r.Addition,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// PaymentTermsRequest describes the payment arrangement in write requests.
type PaymentTermsRequest struct {
	PaymentType      string `json:"paymentType"`
	InstallmentCount int    `json:"installmentCount"`
	PaidInstallments int    `json:"paidInstallments"`
}

func (r PaymentTermsRequest) toDomain() (serviceorder.PaymentTerms, error) {
	paymentType, err := serviceorder.PaymentTypeFromString(r.PaymentType)
	if err != nil {
		return serviceorder.PaymentTerms{}, errs.NewValueIsInvalidErrorWithCause("paymentType", err)
	}
	return serviceorder.NewPaymentTerms(paymentType, r.InstallmentCount, r.PaidInstallments)
}

// CreateServiceOrderRequest is the body of POST /service-orders.
type CreateServiceOrderRequest struct {
	CustomerID           string               `json:"customerId"`
	Equipment            EquipmentRequest     `json:"equipment"`
	Notes                string               `json:"notes"`
	Warranty             bool                 `json:"warranty"`
	IsReturn             bool                 `json:"isReturn"`
	Items                []ServiceItemRequest `json:"items"`
	PaymentTerms         *PaymentTermsRequest `json:"paymentTerms"`
	TotalDiscount        *decimal.Decimal     `json:"totalDiscount"`
	TotalAddition        *decimal.Decimal     `json:"totalAddition"`
	ExpectedDeliveryDate *time.Time           `json:"expectedDeliveryDate"`
}

// CreateServiceOrderResponse returns the server-assigned order identity.
type CreateServiceOrderResponse struct {
	ID string `json:"id"`
}

// UpdateServiceOrderRequest is the body of PATCH /service-orders/:id.
// Absent fields leave the order untouched; an empty items array clears
// the billed lines.
type UpdateServiceOrderRequest struct {
	Equipment            *EquipmentRequest     `json:"equipment"`
	Notes                *string               `json:"notes"`
	Warranty             *bool                 `json:"warranty"`
	IsReturn             *bool                 `json:"isReturn"`
	Items                *[]ServiceItemRequest `json:"items"`
	PaymentTerms         *PaymentTermsRequest  `json:"paymentTerms"`
	TotalDiscount        *decimal.Decimal      `json:"totalDiscount"`
	TotalAddition        *decimal.Decimal      `json:"totalAddition"`
	Status               *string               `json:"status"`
	FinancialStatus      *string               `json:"financialStatus"`
	ExpectedDeliveryDate *time.Time            `json:"expectedDeliveryDate"`
	DeliveryDate         *time.Time            `json:"deliveryDate"`
	TotalAmountPaid      *decimal.Decimal      `json:"totalAmountPaid"`
}

// ChangeStatusRequest is the body of the status transition endpoints.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// SetSequenceRequest is the body of PUT /service-orders/sequence.
type SetSequenceRequest struct {
	Value int64 `json:"value"`
}
