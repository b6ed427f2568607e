package server

func (s *Server) initRoutes() {
	// PUBLIC
	s.RegisterRouteFunc("GET /{$}", ChainMiddleware(s.HomeHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteRedirect, ChainMiddleware(s.OAuthCallbackHandler(), s.HTMLMiddleware()...))

	// PROTECTED (session-gated, server-rendered)
	s.RegisterRouteFunc("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteInvoices, ChainMiddleware(s.InvoicesHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteSupport, ChainMiddleware(s.SupportHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteSupportCreate, ChainMiddleware(s.SupportCreateHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// LOGOUT (works for authenticated and anonymous browsers alike)
	s.RegisterRouteFunc("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))

	// Everything else renders the 404 page
	s.RegisterRouteFunc("/", ChainMiddleware(s.NotFoundHandler(), s.HTMLMiddleware()...))
}
