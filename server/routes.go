package server

func (s *Server) setupRoutes() {
	s.app.Get("/", s.indexHandler)

	s.app.Get("/webhook", s.verifyWebhookHandler)
	s.app.Post("/webhook", s.inboundWebhookHandler)
}
