package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"appraise/internal/apperr"
	"appraise/internal/auth"
	"appraise/internal/payment"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	Gateway payment.Gateway
	Log     *zap.Logger
}

type paymentReq struct {
	PaymentMethodID string `json:"paymentMethodId"`
	AssessmentID    string `json:"assessmentId"`
}

type successResp struct {
	Success bool `json:"success"`
}

// Charge takes the fixed letter price. The assessment id is passed through as
// metadata only; it is not checked against the caller's assessments.
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("payment: bad json", zap.Error(err))
		writeError(w, apperr.ErrInternal, "Error processing payment")
		return
	}

	ch, err := h.Gateway.Charge(r.Context(), payment.ChargeRequest{
		PaymentMethodID: req.PaymentMethodID,
		Amount:          payment.LetterPrice,
		Currency:        payment.LetterCurrency,
		Metadata: map[string]string{
			"assessment_id": req.AssessmentID,
			"user_id":       strconv.FormatUint(u.ID, 10),
		},
	})
	if err != nil {
		h.Log.Error("payment: gateway", zap.Uint64("user_id", u.ID), zap.Error(err))
		writeError(w, apperr.ErrInternal, "Error processing payment")
		return
	}

	if !ch.Succeeded() {
		h.Log.Info("payment not succeeded", zap.String("charge_id", ch.ID), zap.String("status", ch.Status))
		writeError(w, apperr.ErrPaymentFailed, "Payment failed")
		return
	}

	writeJSON(w, http.StatusOK, successResp{Success: true})
}
