package api

import (
	"net/http"
	"strconv"

	reqdto "invopay/internal/handler/dto/request"
	resdto "invopay/internal/handler/dto/response"
	"invopay/internal/handler/httperr"
	"invopay/internal/handler/middleware"
	"invopay/internal/infra"
	"invopay/internal/pkg/errs"
	"invopay/internal/usecase/commands"
	"invopay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUserContext = errs.New("user context missing")

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary Create invoice
// @Description Persist an invoice registered with the payment provider
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInvoiceRequest true "Create invoice request"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserContext, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateInvoice(c.Request.Context(), commands.CreateInvoiceRequest{
		RequestID:    req.RequestID,
		PayeeAddress: req.PayeeAddress,
		PayerAddress: req.PayerAddress,
		Amount:       req.Amount,
		Currency:     req.Currency,
		IssuedDate:   req.IssuedDate,
		DueDate:      req.DueDate,
	}, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Invoice already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create invoice failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.InvoiceID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invoice", nil)
		return
	}
	c.Header("Location", "/api/invoices/"+result.InvoiceID.String())
	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary Get invoice
// @Description Get one of the caller's invoices by ID
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserContext, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary List invoices
// @Description List the caller's invoices, newest first
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.InvoiceListResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserContext, "Unauthorized", nil)
		return
	}
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	list, err := h.q.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceList(list))
}
