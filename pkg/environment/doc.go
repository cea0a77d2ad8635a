// Package environment models the deployment environment (development, staging,
// production) that decides how assets are resolved and how emails are delivered.
//
// The environment is parsed exactly once at process start with Parse and then
// handed to the components that care about it. It can also travel through a
// context.Context (WithContext, FromContext) so request-scoped code such as the
// preview server and structured logs can see it:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // CDN URLs, real delivery
//	}
//
//	mux := environment.Middleware(env)(router)
//
// LoggerExtractor plugs the context value into pkg/logger so every record
// carries an "env" attribute.
package environment
