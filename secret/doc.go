// Package secret resolves secret material referenced from
// configuration, so key bytes and tokens never live in config files.
//
// It supports:
//   - Strict environment expansion (see ExpandEnvStrict)
//   - Pluggable secret providers (see Provider, EnvProvider, Registry)
//   - Resolving secret references in configuration values (see Resolver)
//
// References use the prefix "secretref:":
//   - Full value:  secretref:env:JWT_SIGNING_KEY
//   - Inline use:  Bearer secretref:vault:prod/api-token
//
// Resolved values typically feed signing keys for token issuance or
// Authorization headers for outbound HTTP clients.
package secret
