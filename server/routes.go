package server

import "net/http"

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))

	// PHOTO VIEWER
	s.RegisterRouteHandler("POST "+RoutePhotoOpen, ChainMiddleware(s.OpenPhotoHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RoutePhotoView, ChainMiddleware(s.PhotoViewHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteNavigationBack, ChainMiddleware(s.BackHandler(), s.HTMLMiddleWare()...))

	// Reference auth API (POST /api/v1/auth/signup, POST /api/v1/auth/login)
	if s.authAPI != nil {
		s.authAPI.Register(func(pattern string, handler http.HandlerFunc) {
			s.RegisterRouteHandler(pattern, ChainMiddleware(handler, s.APIMiddleware()...))
		})
		// CorsMiddleware answers preflights before this handler runs
		s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, s.APIMiddleware()...))
	}
}
