package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-customer-portal/internal/config"
	"github.com/jrsteele09/go-customer-portal/internal/identity"
	"github.com/jrsteele09/go-customer-portal/internal/portal"
	"github.com/jrsteele09/go-customer-portal/internal/session"
)

type Server struct {
	env      string // Environment (e.g., "development", "production")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	sessions session.Repo
	cookies  *session.CookieCodec
	identity identity.Client
	invoices portal.InvoiceRepo
	tickets  portal.TicketRepo

	notFoundTmpl *template.Template
	errorTmpl    *template.Template
}

func New(cfg config.Config, sessions session.Repo, idp identity.Client, invoices portal.InvoiceRepo, tickets portal.TicketRepo) (*Server, error) {
	notFoundTmpl, err := ParseTemplate("404.html")
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse 404 template: %w", err)
	}
	errorTmpl, err := ParseTemplate("500.html")
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse 500 template: %w", err)
	}

	s := &Server{
		env:          cfg.GetEnv(),
		mux:          http.NewServeMux(),
		config:       cfg,
		sessions:     sessions,
		cookies:      session.NewCookieCodec(cfg.GetSessionSecret(), cfg.IsProduction()),
		identity:     idp,
		invoices:     invoices,
		tickets:      tickets,
		notFoundTmpl: notFoundTmpl,
		errorTmpl:    errorTmpl,
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "development" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
