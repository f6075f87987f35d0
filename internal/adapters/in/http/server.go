package http

import (
	"net/http"
	"strconv"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/labstack/echo/v4"
)

// Server exposes the service order use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateServiceOrderCommandHandler
	updateOrderHandler     commands.UpdateServiceOrderCommandHandler
	deleteOrderHandler     commands.DeleteServiceOrderCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	changeFinancialHandler commands.ChangeFinancialStatusCommandHandler
	setSequenceHandler     commands.SetOrderNumberSequenceCommandHandler

	// Query handlers
	getOrderHandler         queries.GetServiceOrderQueryHandler
	getOrderByNumberHandler queries.GetServiceOrderByNumberQueryHandler
	listOrdersHandler       queries.ListServiceOrdersQueryHandler
	searchOrdersHandler     queries.SearchServiceOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateServiceOrderCommandHandler,
	updateOrderHandler commands.UpdateServiceOrderCommandHandler,
	deleteOrderHandler commands.DeleteServiceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	changeFinancialHandler commands.ChangeFinancialStatusCommandHandler,
	setSequenceHandler commands.SetOrderNumberSequenceCommandHandler,
	getOrderHandler queries.GetServiceOrderQueryHandler,
	getOrderByNumberHandler queries.GetServiceOrderByNumberQueryHandler,
	listOrdersHandler queries.ListServiceOrdersQueryHandler,
	searchOrdersHandler queries.SearchServiceOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		changeStatusHandler:     changeStatusHandler,
		changeFinancialHandler:  changeFinancialHandler,
		setSequenceHandler:      setSequenceHandler,
		getOrderHandler:         getOrderHandler,
		getOrderByNumberHandler: getOrderByNumberHandler,
		listOrdersHandler:       listOrdersHandler,
		searchOrdersHandler:     searchOrdersHandler,
	}
}

// RegisterRoutes attaches all service order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/service-orders", s.CreateServiceOrder)
	api.GET("/service-orders", s.ListServiceOrders)
	api.GET("/service-orders/search", s.SearchServiceOrders)
	api.GET("/service-orders/by-number/:number", s.GetServiceOrderByNumber)
	api.PUT("/service-orders/sequence", s.SetOrderNumberSequence)
	api.GET("/service-orders/:id", s.GetServiceOrder)
	api.PATCH("/service-orders/:id", s.UpdateServiceOrder)
	api.DELETE("/service-orders/:id", s.DeleteServiceOrder)
	api.POST("/service-orders/:id/status", s.ChangeOrderStatus)
	api.POST("/service-orders/:id/financial-status", s.ChangeFinancialStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateServiceOrder handles POST /api/v1/service-orders.
func (s *Server) CreateServiceOrder(ctx echo.Context) error {
	var request CreateServiceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	equipment, err := request.Equipment.toDomain()
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceOrderCommand(orderID, customerID, equipment)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd.SetNotes(request.Notes)
	cmd.SetWarranty(request.Warranty)
	cmd.SetIsReturn(request.IsReturn)

	if len(request.Items) > 0 {
		items, itemsErr := itemsToDomain(request.Items)
		if itemsErr != nil {
			return writeError(ctx, itemsErr)
		}
		cmd.SetItems(items)
	}
	if request.PaymentTerms != nil {
		terms, termsErr := request.PaymentTerms.toDomain()
		if termsErr != nil {
			return writeError(ctx, termsErr)
		}
		if termsErr = cmd.SetPaymentTerms(terms); termsErr != nil {
			return writeError(ctx, termsErr)
		}
	}
	if request.TotalDiscount != nil || request.TotalAddition != nil {
		discount := decimalOrZero(request.TotalDiscount)
		addition := decimalOrZero(request.TotalAddition)
		cmd.SetAdjustments(discount, addition)
	}
	if request.ExpectedDeliveryDate != nil {
		cmd.SetExpectedDeliveryDate(*request.ExpectedDeliveryDate)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateServiceOrderResponse{ID: orderID.String()})
}

// GetServiceOrder handles GET /api/v1/service-orders/:id.
func (s *Server) GetServiceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetServiceOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// GetServiceOrderByNumber handles GET /api/v1/service-orders/by-number/:number.
func (s *Server) GetServiceOrderByNumber(ctx echo.Context) error {
	number, err := strconv.ParseInt(ctx.Param("number"), 10, 64)
	if err != nil {
		return writeBadRequest(ctx, "order number must be an integer")
	}

	query, err := queries.NewGetServiceOrderByNumberQuery(number)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// ListServiceOrders handles GET /api/v1/service-orders.
// Supported query parameters: page, limit, status, financialStatus,
// paymentType, customerId, customerName, equipment, serialNumber, warranty,
// entryDateFrom, entryDateTo (RFC 3339).
func (s *Server) ListServiceOrders(ctx echo.Context) error {
	page, limit, err := paginationParams(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewListServiceOrdersQuery(page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := serviceorder.StatusFromString(raw)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		if statusErr = query.SetStatusFilter(status); statusErr != nil {
			return writeError(ctx, statusErr)
		}
	}
	if raw := ctx.QueryParam("financialStatus"); raw != "" {
		financial, financialErr := serviceorder.FinancialStatusFromString(raw)
		if financialErr != nil {
			return writeError(ctx, financialErr)
		}
		if financialErr = query.SetFinancialFilter(financial); financialErr != nil {
			return writeError(ctx, financialErr)
		}
	}
	if raw := ctx.QueryParam("paymentType"); raw != "" {
		paymentType, typeErr := serviceorder.PaymentTypeFromString(raw)
		if typeErr != nil {
			return writeError(ctx, typeErr)
		}
		if typeErr = query.SetPaymentTypeFilter(paymentType); typeErr != nil {
			return writeError(ctx, typeErr)
		}
	}
	if raw := ctx.QueryParam("customerName"); raw != "" {
		if nameErr := query.SetCustomerNameFilter(raw); nameErr != nil {
			return writeError(ctx, nameErr)
		}
	}
	if raw := ctx.QueryParam("equipment"); raw != "" {
		if equipErr := query.SetEquipmentFilter(raw); equipErr != nil {
			return writeError(ctx, equipErr)
		}
	}
	if raw := ctx.QueryParam("serialNumber"); raw != "" {
		if serialErr := query.SetSerialNumberFilter(raw); serialErr != nil {
			return writeError(ctx, serialErr)
		}
	}
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		if idErr = query.SetCustomerFilter(customerID); idErr != nil {
			return writeError(ctx, idErr)
		}
	}
	if raw := ctx.QueryParam("warranty"); raw != "" {
		warranty, boolErr := strconv.ParseBool(raw)
		if boolErr != nil {
			return writeBadRequest(ctx, "warranty must be a boolean")
		}
		query.SetWarrantyFilter(warranty)
	}
	if fromRaw, toRaw := ctx.QueryParam("entryDateFrom"), ctx.QueryParam("entryDateTo"); fromRaw != "" || toRaw != "" {
		from, to, rangeErr := dateRangeParams(fromRaw, toRaw)
		if rangeErr != nil {
			return writeBadRequest(ctx, rangeErr.Error())
		}
		if rangeErr = query.SetEntryDateRange(from, to); rangeErr != nil {
			return writeError(ctx, rangeErr)
		}
	}

	pageResult, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageResult)
}

// SearchServiceOrders handles GET /api/v1/service-orders/search.
func (s *Server) SearchServiceOrders(ctx echo.Context) error {
	page, limit, err := paginationParams(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewSearchServiceOrdersQuery(ctx.QueryParam("q"), page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	pageResult, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageResult)
}

// UpdateServiceOrder handles PATCH /api/v1/service-orders/:id.
func (s *Server) UpdateServiceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateServiceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateServiceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = applyUpdateRequest(&cmd, request); err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteServiceOrder handles DELETE /api/v1/service-orders/:id.
func (s *Server) DeleteServiceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteServiceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/service-orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	target, err := serviceorder.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeFinancialStatus handles POST /api/v1/service-orders/:id/financial-status.
func (s *Server) ChangeFinancialStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	target, err := serviceorder.FinancialStatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeFinancialStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeFinancialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderNumberSequence handles PUT /api/v1/service-orders/sequence.
func (s *Server) SetOrderNumberSequence(ctx echo.Context) error {
	var request SetSequenceRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetOrderNumberSequenceCommand(request.Value)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setSequenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
