package api

import (
	"net/http"

	reqdto "invopay/internal/handler/dto/request"
	resdto "invopay/internal/handler/dto/response"
	"invopay/internal/handler/httperr"
	"invopay/internal/handler/middleware"
	"invopay/internal/usecase/commands"
	"invopay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RecurringHandler struct {
	q queries.RecurringPaymentQueries
}

func NewRecurringHandler(q queries.RecurringPaymentQueries) *RecurringHandler {
	return &RecurringHandler{q: q}
}

// @Summary Get recurring payment
// @Description Get a recurring payment schedule by the provider's payment id
// @Tags recurring-payments
// @Produce json
// @Security BearerAuth
// @Param externalId path string true "Provider payment id"
// @Success 200 {object} resdto.RecurringPaymentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/recurring-payments/{externalId} [get]
func (h *RecurringHandler) Get(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserContext, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByExternalID(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecurringPaymentView(view))
}

type PaymentDetailsHandler struct {
	cmds commands.PaymentDetailsCommands
}

func NewPaymentDetailsHandler(cmds commands.PaymentDetailsCommands) *PaymentDetailsHandler {
	return &PaymentDetailsHandler{cmds: cmds}
}

// @Summary Submit payment details
// @Description Store a payer's bank details for fiat payouts, encrypted at rest
// @Tags payment-details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitPaymentDetailsRequest true "Bank details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/payment-details [post]
func (h *PaymentDetailsHandler) Submit(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserContext, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitPaymentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SubmitPaymentDetails(c.Request.Context(), commands.SubmitPaymentDetailsRequest{
		ExternalPaymentDetailID: req.ExternalPaymentDetailID,
		AccountHolder:           req.AccountHolder,
		IBAN:                    req.IBAN,
		BIC:                     req.BIC,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit payment details failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.PayerID.String()})
}
