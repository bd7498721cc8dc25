package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"loanledger/pkg/identity"
	"loanledger/pkg/server/store"
	gormstore "loanledger/pkg/server/store/gorm"
)

type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Resolver identity.Resolver

	UsersStore  store.UsersStore
	LoansStore  store.LoansStore
	AccessStore store.AccessStore
	HealthStore store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	resolver identity.Resolver,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:      router,
		DB:          db,
		Resolver:    resolver,
		UsersStore:  gormstore.NewUsersStore(db),
		LoansStore:  gormstore.NewLoansStore(db),
		AccessStore: gormstore.NewAccessStore(db),
		HealthStore: gormstore.NewHealthStore(db),
		srv:         srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
