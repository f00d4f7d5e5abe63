// Package validator expresses input checks as Rule values and evaluates them
// together with Apply:
//
//	err := validator.Apply(
//		validator.RequiredString("name", msg.Name),
//		validator.ValidEmail("email", msg.Email),
//	)
//
// Apply returns nil or ValidationErrors listing every failed rule. Callers that
// need a single sentinel wrap or translate that result.
package validator
