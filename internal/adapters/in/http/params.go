package http

import (
	"fmt"
	"strconv"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// paginationParams reads the page and limit query parameters, falling back
// to the defaults when absent. Range validation happens in the query
// constructors.
func paginationParams(ctx echo.Context) (int, int, error) {
	page := defaultPage
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("page must be an integer")
		}
		page = parsed
	}

	limit := defaultLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("limit must be an integer")
		}
		limit = parsed
	}

	return page, limit, nil
}

// dateRangeParams parses the entry date filter. A missing bound defaults to
// the open end of the range.
func dateRangeParams(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now()

	if fromRaw != "" {
		parsed, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("entryDateFrom must be RFC 3339")
		}
		from = parsed
	}
	if toRaw != "" {
		parsed, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("entryDateTo must be RFC 3339")
		}
		to = parsed
	}

	return from, to, nil
}

func decimalOrZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}

// applyUpdateRequest copies the present fields of a patch request onto the
// update command, translating enum names and nested structures on the way.
func applyUpdateRequest(cmd *commands.UpdateServiceOrderCommand, request UpdateServiceOrderRequest) error {
	if request.Equipment != nil {
		equipment, err := request.Equipment.toDomain()
		if err != nil {
			return err
		}
		if err = cmd.SetEquipment(equipment); err != nil {
			return err
		}
	}
	if request.Notes != nil {
		cmd.SetNotes(*request.Notes)
	}
	if request.Warranty != nil {
		cmd.SetWarranty(*request.Warranty)
	}
	if request.IsReturn != nil {
		cmd.SetIsReturn(*request.IsReturn)
	}
	if request.Items != nil {
		items, err := itemsToDomain(*request.Items)
		if err != nil {
			return err
		}
		cmd.SetItems(items)
	}
	if request.PaymentTerms != nil {
		terms, err := request.PaymentTerms.toDomain()
		if err != nil {
			return err
		}
		if err = cmd.SetPaymentTerms(terms); err != nil {
			return err
		}
	}
	if request.TotalDiscount != nil {
		cmd.SetTotalDiscount(*request.TotalDiscount)
	}
	if request.TotalAddition != nil {
		cmd.SetTotalAddition(*request.TotalAddition)
	}
	if request.Status != nil {
		status, err := serviceorder.StatusFromString(*request.Status)
		if err != nil {
			return err
		}
		if err = cmd.SetStatus(status); err != nil {
			return err
		}
	}
	if request.FinancialStatus != nil {
		financial, err := serviceorder.FinancialStatusFromString(*request.FinancialStatus)
		if err != nil {
			return err
		}
		if err = cmd.SetFinancial(financial); err != nil {
			return err
		}
	}
	if request.ExpectedDeliveryDate != nil {
		cmd.SetExpectedDeliveryDate(*request.ExpectedDeliveryDate)
	}
	if request.DeliveryDate != nil {
		cmd.SetDeliveryDate(*request.DeliveryDate)
	}
	if request.TotalAmountPaid != nil {
		cmd.SetTotalAmountPaid(*request.TotalAmountPaid)
	}

	return nil
}
