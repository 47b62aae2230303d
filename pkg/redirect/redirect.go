package redirect

import (
	"net/http"
	"strings"
)

// Safe returns to when it is a local path, otherwise fallback. A local path
// starts with a single "/" and cannot escape the site: protocol-relative
// forms ("//evil.com", "/\evil.com"), absolute URLs, and values with control
// bytes are all rejected. Use it on any redirect target that came from user
// input, e.g. a ?redirectTo= query parameter.
func Safe(to, fallback string) string {
	if !isLocal(to) {
		return fallback
	}
	return to
}

// Back redirects to the request's Referer when it is a local path on the
// same host, otherwise to fallback.
func Back(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback

	if referer := r.Header.Get("Referer"); referer != "" {
		if isLocal(referer) {
			target = referer
		} else if path, ok := sameHostPath(referer, r); ok {
			target = path
		}
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func isLocal(to string) bool {
	if len(to) == 0 || to[0] != '/' {
		return false
	}
	// "//host" and "/\host" are treated as scheme-relative URLs by browsers.
	if len(to) > 1 && (to[1] == '/' || to[1] == '\\') {
		return false
	}
	for i := 0; i < len(to); i++ {
		if to[i] < 0x20 || to[i] == 0x7f {
			return false
		}
	}
	return true
}

// sameHostPath reduces an absolute Referer on the request's own host to its
// path, so the redirect stays relative.
func sameHostPath(referer string, r *http.Request) (string, bool) {
	for _, scheme := range []string{"https://", "http://"} {
		rest, found := strings.CutPrefix(referer, scheme)
		if !found {
			continue
		}
		host, path, found := strings.Cut(rest, "/")
		if !found {
			path = ""
		}
		if host == r.Host {
			return Safe("/"+path, "/"), true
		}
	}
	return "", false
}
