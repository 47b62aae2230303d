// Package intent dispatches multiple form actions submitted to a single
// endpoint.
//
// A form names its action with an "intent" value, either in the query string
// ("?intent=delete") or as a hidden or submit-button field in the body.
// Dispatch routes the request to the matching handler:
//
//	err := intent.Dispatch(w, r, map[string]http.HandlerFunc{
//		"create":  createItem,
//		"delete":  deleteItem,
//		"default": showForm,
//	})
//
// Missing and unknown intents produce typed errors so the endpoint can
// answer 400 with a useful message.
package intent
