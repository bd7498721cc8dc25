package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"loanledger/pkg/audit"
	"loanledger/pkg/model"
	"loanledger/pkg/server"
	"loanledger/pkg/server/service"
)

// LoanRequest is the body of POST /loans and PUT /loans/{id}
type LoanRequest struct {
	Amount  float64 `json:"amount"`
	APR     float64 `json:"apr"`
	Term    int     `json:"term"`
	Status  string  `json:"status"`
	OwnerID int64   `json:"owner_id"`
}

// ShareRequest is the body of POST /loans/{id}/share
type ShareRequest struct {
	UserID int64 `json:"user_id"`
}

// RegisterLoansEndpoints registers the loan lifecycle and amortization
// endpoints
func RegisterLoansEndpoints(s *server.Server) {
	loanService := service.NewLoanService(s.UsersStore, s.LoansStore, s.AccessStore)

	// POST /loans - Open a loan
	s.Router.HandleFunc("/loans", handleCreateLoan(loanService)).Methods("POST")

	// GET /loans/{id} - Show a loan
	s.Router.HandleFunc("/loans/{id:[0-9]+}", handleGetLoan(loanService)).Methods("GET")

	// PUT /loans/{id} - Rewrite a loan's terms (owner only)
	s.Router.HandleFunc("/loans/{id:[0-9]+}", handleUpdateLoan(loanService)).Methods("PUT")

	// POST /loans/{id}/share - Grant read access (owner only)
	s.Router.HandleFunc("/loans/{id:[0-9]+}/share", handleShareLoan(loanService)).Methods("POST")

	// GET /loans/{id}/schedule - Full amortization schedule
	s.Router.HandleFunc("/loans/{id:[0-9]+}/schedule", handleGetSchedule(loanService)).Methods("GET")

	// GET /loans/{id}/summary?month=N - Position after N payments
	s.Router.HandleFunc("/loans/{id:[0-9]+}/summary", handleGetSummary(loanService)).Methods("GET")
}

func handleCreateLoan(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		params, err := model.NewLoanParams(req.Amount, req.APR, req.Term, req.Status, req.OwnerID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		loan, err := loanService.CreateLoan(params)
		if err != nil {
			audit.Log(&audit.LoanCreateEvent{
				UserID:       req.OwnerID,
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(&audit.LoanCreateEvent{
			UserID:     loan.OwnerID,
			LoanID:     loan.ID,
			Amount:     loan.Amount,
			APR:        loan.APR,
			TermMonths: loan.Term,
			Success:    true,
		})
		respondWithJSON(w, http.StatusCreated, loan)
	}
}

func handleGetLoan(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := pathID(r)
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		loan, err := loanService.GetLoan(loanID, userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, loan)
	}
}

func handleUpdateLoan(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := pathID(r)
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		params, err := model.NewLoanParams(req.Amount, req.APR, req.Term, req.Status, req.OwnerID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		loan, err := loanService.UpdateLoan(loanID, params, userID)
		if err != nil {
			audit.Log(&audit.LoanUpdateEvent{
				UserID:       userID,
				LoanID:       loanID,
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(&audit.LoanUpdateEvent{UserID: userID, LoanID: loanID, Success: true})
		respondWithJSON(w, http.StatusOK, loan)
	}
}

func handleShareLoan(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := pathID(r)
		ownerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req ShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if err := loanService.ShareLoan(loanID, ownerID, req.UserID); err != nil {
			audit.Log(&audit.LoanShareEvent{
				OwnerID:      ownerID,
				TargetID:     req.UserID,
				LoanID:       loanID,
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(&audit.LoanShareEvent{
			OwnerID:  ownerID,
			TargetID: req.UserID,
			LoanID:   loanID,
			Success:  true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGetSchedule(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := pathID(r)
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		schedule, err := loanService.GetSchedule(loanID, userID)
		if err != nil {
			audit.Log(&audit.LoanFetchEvent{
				UserID:       userID,
				LoanID:       loanID,
				Resource:     "schedule",
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(&audit.LoanFetchEvent{
			UserID:   userID,
			LoanID:   loanID,
			Resource: "schedule",
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, schedule)
	}
}

func handleGetSummary(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := pathID(r)
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		monthStr := r.URL.Query().Get("month")
		month, err := strconv.Atoi(monthStr)
		if monthStr == "" || err != nil {
			respondWithError(w, http.StatusBadRequest, "month query parameter must be an integer")
			return
		}

		summary, err := loanService.GetSummary(loanID, month, userID)
		if err != nil {
			audit.Log(&audit.LoanFetchEvent{
				UserID:       userID,
				LoanID:       loanID,
				Resource:     "summary",
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(&audit.LoanFetchEvent{
			UserID:   userID,
			LoanID:   loanID,
			Resource: "summary",
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, summary)
	}
}

func pathID(r *http.Request) int64 {
	// The {id:[0-9]+} route pattern guarantees this parses.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
