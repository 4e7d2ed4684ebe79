package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/masalamart/masalamart-api/middleware"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

const transactionPageSize = 50

type rewardRequest struct {
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	Description string `json:"description"`
}

// RewardController handles reward balance and ledger requests.
type RewardController struct {
	Ledger *services.RewardLedger
}

// NewRewardController creates a RewardController.
func NewRewardController(ledger *services.RewardLedger) *RewardController {
	return &RewardController{Ledger: ledger}
}

// GetBalance handles GET /api/rewards.
func (rc *RewardController) GetBalance(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	reward, err := rc.Ledger.Balance(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "reward balance fetched", reward)
}

// GetTransactions handles GET /api/rewards/transactions.
func (rc *RewardController) GetTransactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	txs, err := rc.Ledger.Transactions(r.Context(), claims.UserID, transactionPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "transactions fetched", map[string]interface{}{
		"transactions": txs,
	})
}

// Earn handles POST /api/rewards/earn.
func (rc *RewardController) Earn(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	var body rewardRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	tx, err := rc.Ledger.RecordEarn(r.Context(), claims.UserID, body.Amount, body.OrderID, body.Description)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "points earned", tx)
}

// Redeem handles POST /api/rewards/redeem.
func (rc *RewardController) Redeem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, "credential missing", nil)
		return
	}

	var body rewardRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	tx, err := rc.Ledger.RecordRedeem(r.Context(), claims.UserID, body.Amount, body.OrderID, body.Description)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "points redeemed", tx)
}
