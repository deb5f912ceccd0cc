package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/curalink-dev/curalink-server/internal/audit"
	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/httpresp"
	"github.com/curalink-dev/curalink-server/internal/middleware"
	"github.com/curalink-dev/curalink-server/internal/models"
	"github.com/curalink-dev/curalink-server/internal/wallet"
)

// fallback consultation fee when a doctor profile has none set
const defaultConsultationFee = 500

type WalletHandler struct {
	db       *gorm.DB
	wallet   *wallet.Service
	requests domain.Repository
	audit    *audit.Dispatcher
}

func NewWalletHandler(
	db *gorm.DB,
	walletSvc *wallet.Service,
	requests domain.Repository,
	audit *audit.Dispatcher,
) *WalletHandler {
	return &WalletHandler{
		db:       db,
		wallet:   walletSvc,
		requests: requests,
		audit:    audit,
	}
}

// --------- Requests ---------

type TopupBody struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type TopupConfirmBody struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reference string  `json:"reference" binding:"required"`
}

type PayBody struct {
	RequestID string `json:"request_id" binding:"required"`
}

// --------- Handlers ---------

func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	balance, err := h.wallet.Balance(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_read_wallet", "Failed to read wallet.")
		return
	}

	httpresp.OK(c, gin.H{"balance": balance})
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	txs, err := h.wallet.Transactions(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_read_wallet", "Failed to read wallet.")
		return
	}

	httpresp.List(c, txs)
}

// Topup starts a top-up. With a configured payment gateway it answers with a
// checkout preference; in demo mode the wallet is credited immediately.
func (h *WalletHandler) Topup(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var body TopupBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "A positive amount is required.")
		return
	}

	if h.wallet.TopupEnabled() {
		prefID, initPoint, err := h.wallet.CreateTopupPreference(c.Request.Context(), userID, body.Amount)
		if err != nil {
			httperr.Internal(c, "failed_to_create_preference", "Failed to start checkout.")
			return
		}

		httpresp.OK(c, gin.H{
			"preference_id": prefID,
			"init_point":    initPoint,
		})
		return
	}

	tx, err := h.wallet.Credit(c.Request.Context(), userID, body.Amount, "demo_topup", "Demo wallet top-up")
	if err != nil {
		h.writeWalletError(c, err)
		return
	}

	h.auditWallet(userID, "wallet_topup", tx)
	httpresp.Created(c, tx)
}

// TopupConfirm credits a top-up after the client returns from checkout. The
// demo trusts the caller; a production system would verify a gateway webhook
// instead.
func (h *WalletHandler) TopupConfirm(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var body TopupConfirmBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Amount and reference are required.")
		return
	}

	tx, err := h.wallet.Credit(c.Request.Context(), userID, body.Amount, body.Reference, "Wallet top-up")
	if err != nil {
		h.writeWalletError(c, err)
		return
	}

	h.auditWallet(userID, "wallet_topup", tx)
	httpresp.Created(c, tx)
}

// Pay debits the consultation fee for the patient's accepted request.
func (h *WalletHandler) Pay(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var body PayBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "A request id is required.")
		return
	}

	req, err := h.requests.GetByID(c.Request.Context(), body.RequestID)
	if err != nil || req.PatientID != userID {
		httperr.NotFound(c, "request_not_found", "Appointment request not found.")
		return
	}

	if req.Status != string(domain.StatusAccepted) {
		httperr.Conflict(c, "request_not_accepted", "Only accepted appointments can be paid for.")
		return
	}

	fee := defaultConsultationFee
	var doctor models.User
	if err := h.db.First(&doctor, "id = ?", req.DoctorID).Error; err == nil && doctor.ConsultationFee > 0 {
		fee = int(doctor.ConsultationFee)
	}

	tx, err := h.wallet.Debit(c.Request.Context(), userID, float64(fee), req.ID, "Consultation fee: "+req.DoctorName)
	if err != nil {
		h.writeWalletError(c, err)
		return
	}

	h.auditWallet(userID, "wallet_payment", tx)
	httpresp.Created(c, tx)
}

// --------- Helpers ---------

func (h *WalletHandler) writeWalletError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "insufficient_funds":
		httperr.Conflict(c, code, "Wallet balance is too low.")
	case "invalid_amount":
		httperr.BadRequest(c, code, "A positive amount is required.")
	default:
		httperr.Internal(c, "wallet_operation_failed", "Wallet operation failed.")
	}
}

func (h *WalletHandler) auditWallet(userID, action string, tx *models.WalletTransaction) {
	txID := strconv.FormatUint(uint64(tx.ID), 10)
	h.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   action,
		Entity:   "wallet_transaction",
		EntityID: &txID,
		Metadata: map[string]any{"amount": tx.Amount, "kind": tx.Kind, "reference": tx.Reference},
	})
}
