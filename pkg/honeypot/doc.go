// Package honeypot detects bot-submitted forms without persistent state.
//
// Two signals are combined. A decoy input, hidden from humans via CSS but
// present in the markup, must come back empty: bots fill every field they
// find. An optional second hidden field carries an encrypted "valid-from"
// timestamp captured when the form was rendered; a submission whose
// timestamp lies in the future was forged or replayed.
//
// The check is stateless across requests: no database, no rate limiting.
// That trade is deliberate and documented — this is a first line of defense
// that filters naive bots cheaply, not a substitute for real abuse
// protection.
//
// # Usage
//
//	hp, err := honeypot.New(cfg.Secret)
//	if err != nil {
//		return err
//	}
//
//	// Render: add the hidden fields to the form template.
//	props, err := hp.InputProps()
//
//	// Submit: reject bots before touching business logic.
//	if err := hp.CheckRequest(r); err != nil {
//		if errors.Is(err, honeypot.ErrSpam) {
//			w.WriteHeader(http.StatusUnprocessableEntity)
//			return
//		}
//		// parse error etc.
//	}
//
// Configuration can come from the environment via Config and NewFromConfig,
// or from functional options. WithRandomizedInputName gives the decoy a
// fresh uuid-suffixed name per render so bots cannot learn the field name.
//
// # Error Handling
//
// All spam rejections wrap the single ErrSpam sentinel, so callers can
// special-case bot traffic with errors.Is while letting unrelated errors
// (body parse failures, encryption errors) propagate to generic handling.
package honeypot
