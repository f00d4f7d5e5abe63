// Package cascade decides which locale a view renders in.
//
// Resolution happens in two phases. New computes a locale synchronously so the
// first render never waits on the network:
//
//  1. an explicit preference read from the preference.Store, else
//  2. the heuristic detector applied to the client signals, else
//  3. the primary locale.
//
// When no explicit preference exists, Start launches one geo lookup in the
// background. If it reports a Korean visitor the locale switches to KR once.
// The result is discarded if the visitor toggled the locale in the meantime or
// the view was closed; lookup failures leave the locale untouched.
//
// Toggle flips the locale, persists it and makes it final for the lifetime of
// the Resolver. Subscribers are told about every change.
package cascade
