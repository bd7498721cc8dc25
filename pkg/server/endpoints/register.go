package endpoints

import (
	"loanledger/pkg/server"
	"loanledger/pkg/server/middleware"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	auth := middleware.NewAuthenticator(srv.Resolver)
	srv.Router.Use(auth.Middleware)

	RegisterStatusEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterLoansEndpoints(srv)
}
