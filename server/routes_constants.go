package server

const (
	RouteHome          = "/"
	RouteLogin         = "/login"
	RouteRedirect      = "/redirect"
	RouteDashboard     = "/dashboard"
	RouteProfile       = "/profile"
	RouteInvoices      = "/invoices"
	RouteSupport       = "/support"
	RouteSupportCreate = "/support/create"
	RouteLogout        = "/logout"
)

const contentTypeHTML = "text/html; charset=utf-8"
