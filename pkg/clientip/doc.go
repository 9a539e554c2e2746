// Package clientip resolves the address of the caller behind reverse proxies.
//
// A Resolver checks a configured list of proxy headers in order and falls
// back to the connection's RemoteAddr. Only trust headers your edge actually
// sets; a client can send any of them. GetIP and Middleware use
// DefaultHeaders (Cloudflare, DigitalOcean, X-Forwarded-For, X-Real-IP).
//
//	res := clientip.NewResolver(cfg.TrustedIPHeaders...)
//	r.Use(res.Middleware)
//	...
//	ip := clientip.GetIPFromContext(r.Context())
package clientip
