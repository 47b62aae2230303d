package intent

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultField is the form/query field carrying the action name.
const DefaultField = "intent"

// FromRequest returns the action name submitted with the request, looking at
// the query string first and the parsed form body second. The query wins so
// a form can post to "?intent=delete" without a hidden input.
func FromRequest(r *http.Request) (string, error) {
	return FromRequestField(r, DefaultField)
}

// FromRequestField is FromRequest with a custom field name.
func FromRequestField(r *http.Request, field string) (string, error) {
	if v := r.URL.Query().Get(field); v != "" {
		return v, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	if v := r.PostForm.Get(field); v != "" {
		return v, nil
	}

	return "", fmt.Errorf("%w: field %q", ErrMissingIntent, field)
}

// Dispatch routes the request to the action registered under its intent
// name. When the request carries no intent, or an unregistered one, the
// "default" action runs if present; otherwise a typed error reports what was
// missing so the handler can answer 400.
func Dispatch(w http.ResponseWriter, r *http.Request, actions map[string]http.HandlerFunc) error {
	name, err := FromRequest(r)
	if err != nil && !errors.Is(err, ErrMissingIntent) {
		return err
	}

	if action, ok := actions[name]; ok && name != "" {
		action(w, r)
		return nil
	}

	if action, ok := actions["default"]; ok {
		action(w, r)
		return nil
	}

	if name == "" {
		return fmt.Errorf("%w: field %q", ErrMissingIntent, DefaultField)
	}
	return fmt.Errorf("%w: %q", ErrUnknownIntent, name)
}
