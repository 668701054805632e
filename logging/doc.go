// Package logging defines the minimal structured logging contract shared by
// the devhelper packages, plus a JSON implementation suitable for services
// that have no logging stack of their own.
//
// The Logger interface is four leveled methods over a Fields map. Packages in
// this module accept any Logger; adapters for zap, logrus, and log/slog live
// in the subpackages zaplog, logruslog, and slogbridge so callers can plug in
// the stack they already run.
//
// Field values under credential-like keys (password, secret, token, api_key,
// apiKey, credential) are redacted by the JSON implementation before they are
// written.
package logging
