package server

func (s *Server) setupRoutes() {
	s.app.Get("/webhook", s.verifyWebhookHandler)
	s.app.Post("/webhook", s.verifySignature(s.webhookHandler))

	s.app.Get("/status", s.statusHandler)
	s.app.Get("/image/:productId", s.productImageHandler)

	// Payment processor callback
	s.app.Get("/finish", s.finishHandler)
	s.app.Post("/finish", s.finishHandler)

	// Catalog callback for back-ordered products
	s.app.Post("/notification", s.notificationHandler)
}
