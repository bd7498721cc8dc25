package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"loanledger/pkg/server"
	"loanledger/pkg/server/service"
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Username string `json:"username"`
}

// RegisterUsersEndpoints registers the user management endpoints
func RegisterUsersEndpoints(s *server.Server) {
	userService := service.NewUserService(s.UsersStore)
	loanService := service.NewLoanService(s.UsersStore, s.LoansStore, s.AccessStore)

	// POST /users - Register a user
	s.Router.HandleFunc("/users", handleCreateUser(userService)).Methods("POST")

	// GET /users - List all users
	s.Router.HandleFunc("/users", handleListUsers(userService)).Methods("GET")

	// GET /users/{id}/loans - Loans the user owns
	s.Router.HandleFunc("/users/{id:[0-9]+}/loans", handleListOwnedLoans(loanService)).Methods("GET")

	// GET /users/{id}/visible-loans - Loans the user owns or has been granted
	s.Router.HandleFunc("/users/{id:[0-9]+}/visible-loans", handleListVisibleLoans(loanService)).Methods("GET")
}

func handleCreateUser(userService *service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		user, err := userService.CreateUser(req.Username)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, user)
	}
}

func handleListUsers(userService *service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := userService.ListUsers()
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, users)
	}
}

func handleListOwnedLoans(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

		loans, err := loanService.ListLoansForOwner(userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, loans)
	}
}

func handleListVisibleLoans(loanService *service.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

		loans, err := loanService.ListVisibleLoans(userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, loans)
	}
}
