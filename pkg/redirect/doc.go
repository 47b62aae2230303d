// Package redirect validates redirect targets that originate from user
// input, closing the open-redirect hole where ?redirectTo=https://evil.com
// sends an authenticated user off-site.
//
// Safe admits only local paths and substitutes a fallback for everything
// else; Back applies the same rule to the Referer header.
//
//	http.Redirect(w, r, redirect.Safe(r.FormValue("redirectTo"), "/dashboard"), http.StatusSeeOther)
package redirect
