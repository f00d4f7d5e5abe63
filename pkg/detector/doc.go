// Package detector guesses a display locale from client signals when the
// visitor has not chosen one.
//
// The rule is fixed: a Korean language tag anywhere in the preference list
// selects KR, otherwise a Korea Standard Time timezone selects KR, otherwise
// the primary locale EN is used. Detect is pure and never fails.
//
// Signals come from the operating system (FromEnvironment) or from an HTTP
// request (FromRequest). Both are best effort; missing information simply
// yields fewer signals.
package detector
