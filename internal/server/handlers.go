package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mizan/internal/ledger/models"
	"mizan/internal/ledger/service"
)

// Handler exposes the ledger services over HTTP.
type Handler struct {
	chart        service.ChartService
	entries      service.EntryService
	trialBalance service.TrialBalanceService
	closing      service.ClosingService
	balances     service.BalanceService
}

// NewHandler creates the ledger API handler.
func NewHandler(
	chart service.ChartService,
	entries service.EntryService,
	trialBalance service.TrialBalanceService,
	closing service.ClosingService,
	balances service.BalanceService,
) *Handler {
	return &Handler{
		chart:        chart,
		entries:      entries,
		trialBalance: trialBalance,
		closing:      closing,
		balances:     balances,
	}
}

// ListAccounts returns the chart of accounts, seeding defaults on first use.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.chart.Accounts(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, accounts)
}

type createEntryRequest struct {
	Date        string                  `json:"date"`
	Description string                  `json:"description"`
	Reference   string                  `json:"reference"`
	ProjectID   string                  `json:"projectId"`
	TenderID    string                  `json:"tenderId"`
	CreatedBy   string                  `json:"createdBy"`
	Debits      []models.AccountingLine `json:"debits"`
	Credits     []models.AccountingLine `json:"credits"`
}

// CreateEntry records one balanced transaction. An unbalanced entry is a
// 400 and leaves the log untouched; a storage failure is a 500.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var request createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	entry, err := h.entries.CreateEntry(r.Context(), service.CreateEntryInput{
		Date:        date,
		Description: request.Description,
		Reference:   request.Reference,
		ProjectID:   request.ProjectID,
		TenderID:    request.TenderID,
		CreatedBy:   request.CreatedBy,
		Debits:      request.Debits,
		Credits:     request.Credits,
	})
	if err != nil {
		if service.IsValidationError(err) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// ListEntries returns the full entry log.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.Entries(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if entries == nil {
		entries = []*models.AccountingEntry{}
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// DeleteEntry hard-removes one entry; 404 when the id is unknown.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.entries.DeleteEntry(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		respondWithError(w, http.StatusNotFound, "Accounting entry not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Accounting entry deleted", "id": id})
}

// TrialBalance returns per-account positions as of the as_of query date
// (defaults to today).
func (h *Handler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	lines, err := h.trialBalance.Generate(r.Context(), asOf)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if lines == nil {
		lines = []*models.TrialBalanceLine{}
	}
	respondWithJSON(w, http.StatusOK, lines)
}

// ValidateTrialBalance reports the accounting identity check.
func (h *Handler) ValidateTrialBalance(w http.ResponseWriter, r *http.Request) {
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	summary, err := h.trialBalance.Validate(r.Context(), asOf)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

type accountBalanceResponse struct {
	AccountCode         string             `json:"accountCode"`
	AccountName         string             `json:"accountName"`
	Balance             float64            `json:"balance"`
	BalanceType         models.BalanceSide `json:"balanceType"`
	LastTransactionDate time.Time          `json:"lastTransactionDate"`
}

// ListBalances returns the materialized per-account balances.
func (h *Handler) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balances.Balances(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]accountBalanceResponse, len(balances))
	for i, balance := range balances {
		response[i] = accountBalanceResponse{
			AccountCode:         balance.AccountCode,
			AccountName:         balance.AccountName,
			Balance:             balance.Magnitude(),
			BalanceType:         balance.Side(),
			LastTransactionDate: balance.LastTransactionDate,
		}
	}

	respondWithJSON(w, http.StatusOK, response)
}

// ClosePeriod runs period-end closing for a fiscal year; 409 when the
// period was already closed.
func (h *Handler) ClosePeriod(w http.ResponseWriter, r *http.Request) {
	period := mux.Vars(r)["period"]

	entries, err := h.closing.ClosePeriod(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodAlreadyClosed):
			respondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidPeriod):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if entries == nil {
		entries = []*models.AccountingEntry{}
	}
	respondWithJSON(w, http.StatusOK, entries)
}

func parseAsOf(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now(), true
	}

	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid as_of format. Use YYYY-MM-DD")
		return time.Time{}, false
	}
	return asOf, true
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Error marshaling JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
