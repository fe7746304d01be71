// Package credential resolves access credentials before a request is
// dispatched.
//
// Providers implement a single Resolve method; failures are always *Error
// values so the operation layer can classify them uniformly. The standard
// resolution order is environment variables, then the shared credentials
// file:
//
//	creds, err := credential.NewCachedProvider(credential.DefaultChain()).Resolve(ctx)
package credential
