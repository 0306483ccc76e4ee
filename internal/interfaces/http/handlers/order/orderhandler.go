package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campushub/internal/application/order/usecases"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/utils"
)

type OrderHandler struct {
	checkoutUC   usecases.CheckoutExecutor
	paymentUC    usecases.CompletePaymentExecutor
	pendingUC    usecases.GetPendingOrderExecutor
	listOrdersUC usecases.ListOrdersExecutor
	logger       logger.Interface
}

func NewOrderHandler(
	checkoutUC usecases.CheckoutExecutor,
	paymentUC usecases.CompletePaymentExecutor,
	pendingUC usecases.GetPendingOrderExecutor,
	listOrdersUC usecases.ListOrdersExecutor,
) *OrderHandler {
	return &OrderHandler{
		checkoutUC:   checkoutUC,
		paymentUC:    paymentUC,
		pendingUC:    pendingUC,
		listOrdersUC: listOrdersUC,
		logger:       logger.NewLogger(),
	}
}

// Checkout handles POST /orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for checkout", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(c.GetString("username"))

	result, err := h.checkoutUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order created successfully")
}

// CompletePayment handles POST /orders/payment/complete
func (h *OrderHandler) CompletePayment(c *gin.Context) {
	cmd := usecases.CompletePaymentCommand{
		StudentUsername: c.GetString("username"),
	}

	result, err := h.paymentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment recorded successfully", result)
}

// GetPendingOrder handles GET /orders/pending
func (h *OrderHandler) GetPendingOrder(c *gin.Context) {
	query := usecases.GetPendingOrderQuery{
		StudentUsername: c.GetString("username"),
	}

	result, err := h.pendingUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	query := usecases.ListOrdersQuery{
		StudentUsername: c.GetString("username"),
	}

	result, err := h.listOrdersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Orders, result.Total)
}
