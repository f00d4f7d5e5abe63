// Package modules assembles the site API from its endpoint modules.
//
//	r := modules.Router(modules.RouterOptions{
//		Contact: contact.NewService(relay, contact.WithLogger(log)),
//		Locale:  locale.NewService(locale.WithLogger(log)),
//		Logger:  log,
//	})
//
// Every request gets a request ID, its client IP and heuristic locale in the
// context, and panic recovery.
package modules
