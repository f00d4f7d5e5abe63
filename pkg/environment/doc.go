// Package environment identifies the deployment (development, staging or
// production) from APP_ENV.
package environment
