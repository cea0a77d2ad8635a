// Package httpserver runs the email preview HTTP server with graceful
// shutdown, configurable timeouts and health-check handlers.
//
// Construction goes through New or NewFromConfig with Option helpers such as
// WithAddr and WithLogger. Run binds the listener first, so an address with
// port 0 works and Addr reports the bound address. Start and stop hooks
// receive that address, which the CLI uses to print the preview URL.
//
// Run blocks until its context is cancelled, an interrupt or TERM signal is
// received, or Shutdown is called. Listen failures are wrapped with ErrStart
// and shutdown failures with ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("preview server stopped", logger.Error(err))
//	}
package httpserver
