package endpoints

import (
	"github.com/gorilla/mux"

	"loanledger/pkg/identity"
	"loanledger/pkg/server"
	"loanledger/pkg/server/store"
)

// NewTestServer creates a server instance wired to the supplied stores,
// with routes registered and audit persistence left off. It never opens a
// database connection, so handler tests run against mocks.
func NewTestServer(
	users store.UsersStore,
	loans store.LoansStore,
	access store.AccessStore,
	health store.HealthStore,
) *server.Server {
	s := &server.Server{
		Router:      mux.NewRouter().UseEncodedPath(),
		Resolver:    identity.HeaderResolver{},
		UsersStore:  users,
		LoansStore:  loans,
		AccessStore: access,
		HealthStore: health,
	}
	RegisterAll(s)
	return s
}
