package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// an empty prefix registers routes directly on the parent router
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if prefix == "" {
		r.Group(func(sub Router) {
			if len(mw) > 0 {
				sub.Use(mw...)
			}
			mount(sub)
		})
		return
	}
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
