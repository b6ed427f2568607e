package server

import (
	"net/http"

	apperrors "github.com/jrsteele09/go-customer-portal/internal/errors"
	"github.com/jrsteele09/go-customer-portal/internal/portal"
	"github.com/jrsteele09/go-customer-portal/internal/session"
	"github.com/rs/zerolog/log"
)

// PageData is the common payload handed to every page template
type PageData struct {
	AppName string
	Account *session.Account
}

// HomeHandler renders the public home page with the current account when
// one exists
func (s *Server) HomeHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("home.html")
	if err != nil {
		panic("Failed to parse home template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{AppName: s.config.GetAppName()}
		if _, sess, ok := s.browserSession(r); ok {
			data.Account = sess.Account
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render home template")
		}
	}
}

func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("dashboard.html")
	if err != nil {
		panic("Failed to parse dashboard template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessionFrom(r)

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, PageData{AppName: s.config.GetAppName(), Account: sess.Account}); err != nil {
			log.Err(err).Msg("Failed to render dashboard template")
		}
	}
}

func (s *Server) ProfileHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("profile.html")
	if err != nil {
		panic("Failed to parse profile template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessionFrom(r)

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, PageData{AppName: s.config.GetAppName(), Account: sess.Account}); err != nil {
			log.Err(err).Msg("Failed to render profile template")
		}
	}
}

// InvoicesPageData carries the invoice list alongside the common page data
type InvoicesPageData struct {
	PageData
	Invoices []portal.Invoice
}

func (s *Server) InvoicesHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("invoices.html")
	if err != nil {
		panic("Failed to parse invoices template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessionFrom(r)

		invoices, err := s.invoices.ListByUser(sess.Account.Username)
		if err != nil {
			log.Err(err).Msg("Failed to list invoices")
			http.Error(w, "Failed to load invoices", http.StatusInternalServerError)
			return
		}

		data := InvoicesPageData{
			PageData: PageData{AppName: s.config.GetAppName(), Account: sess.Account},
			Invoices: invoices,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render invoices template")
		}
	}
}

// SupportPageData carries the ticket list and the post-create success flag
type SupportPageData struct {
	PageData
	Tickets []portal.Ticket
	Success bool
}

func (s *Server) SupportHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("support.html")
	if err != nil {
		panic("Failed to parse support template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessionFrom(r)

		tickets, err := s.tickets.ListByUser(sess.Account.Username)
		if err != nil {
			log.Err(err).Msg("Failed to list tickets")
			http.Error(w, "Failed to load tickets", http.StatusInternalServerError)
			return
		}

		data := SupportPageData{
			PageData: PageData{AppName: s.config.GetAppName(), Account: sess.Account},
			Tickets:  tickets,
			Success:  r.URL.Query().Get("success") == "true",
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render support template")
		}
	}
}

// SupportCreateHandler accepts the new-ticket form (POST /support/create)
func (s *Server) SupportCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessionFrom(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		newTicket := portal.NewTicket{
			Subject:     r.FormValue("subject"),
			Description: r.FormValue("description"),
			Priority:    r.FormValue("priority"),
		}

		ticket, err := s.tickets.Create(sess.Account.Username, newTicket)
		if apperrors.Is(err, apperrors.ErrMissingField) {
			http.Error(w, "All fields are required", http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Err(err).Msg("Failed to create ticket")
			http.Error(w, "Failed to create ticket", http.StatusInternalServerError)
			return
		}

		log.Info().
			Str("username", sess.Account.Username).
			Str("ticket_id", ticket.ID).
			Str("priority", ticket.Priority).
			Msg("New support ticket created")

		http.Redirect(w, r, RouteSupport+"?success=true", http.StatusSeeOther)
	}
}

func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		w.WriteHeader(http.StatusNotFound)
		if err := s.notFoundTmpl.Execute(w, nil); err != nil {
			log.Err(err).Msg("Failed to render 404 template")
		}
	}
}
