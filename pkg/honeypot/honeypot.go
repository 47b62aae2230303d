package honeypot

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	minSecretLength = 32

	defaultInputName          = "name__confirm"
	defaultValidFromFieldName = "from__confirm"

	maxMultipartMemory = 10 << 20 // 10 MB
)

// Honeypot detects bot-submitted forms with a decoy field and an encrypted
// time-window signal. It holds no per-request state: configuration is
// read-only after New and a Honeypot is safe to share across requests.
type Honeypot struct {
	inputName          string
	randomizeInputName bool
	validFromFieldName string
	key                []byte
	now                func() time.Time
}

// InputProps describes the hidden fields a form must render. The fields are
// regenerated per render; EncryptedValidFrom carries the render time.
type InputProps struct {
	InputName          string
	ValidFromFieldName string
	EncryptedValidFrom string
}

// New creates a Honeypot. The secret encrypts the valid-from timestamp and
// must be at least 32 characters.
func New(secret string, opts ...Option) (*Honeypot, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d", ErrSecretTooShort, len(secret), minSecretLength)
	}

	key, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}

	h := &Honeypot{
		inputName:          defaultInputName,
		validFromFieldName: defaultValidFromFieldName,
		key:                key,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// InputProps returns the hidden field names and the encrypted render
// timestamp for one form render. With randomized input names every call
// yields a fresh decoy name.
func (h *Honeypot) InputProps() (InputProps, error) {
	name := h.inputName
	if h.randomizeInputName {
		name = h.inputName + "_" + uuid.NewString()
	}

	props := InputProps{InputName: name}

	if h.validFromFieldName != "" {
		encrypted, err := h.seal(strconv.FormatInt(h.now().UnixMilli(), 10))
		if err != nil {
			return InputProps{}, err
		}
		props.ValidFromFieldName = h.validFromFieldName
		props.EncryptedValidFrom = encrypted
	}

	return props, nil
}

// Check inspects submitted form values and returns an ErrSpam-wrapped error
// when the submission looks bot-generated: the decoy field carries a value,
// the configured valid-from field is missing, or its decrypted timestamp
// lies in the future (the form was submitted before it could have been
// rendered). A clean submission returns nil.
//
// There is deliberately no expiry on the valid-from timestamp: an old but
// otherwise valid token passes.
func (h *Honeypot) Check(form url.Values) error {
	name := h.inputName
	if h.randomizeInputName {
		name = findRandomizedName(form, h.inputName+"_")
	}

	if name != "" {
		for _, v := range form[name] {
			if v != "" {
				return fmt.Errorf("%w: honeypot input %q is not empty", ErrSpam, name)
			}
		}
	}

	if h.validFromFieldName == "" {
		return nil
	}

	values, ok := form[h.validFromFieldName]
	if !ok || len(values) == 0 || values[0] == "" {
		return fmt.Errorf("%w: missing valid-from input %q", ErrSpam, h.validFromFieldName)
	}

	plaintext, err := h.open(values[0])
	if err != nil {
		return fmt.Errorf("%w: invalid valid-from value", ErrSpam)
	}

	ms, err := strconv.ParseInt(plaintext, 10, 64)
	if err != nil || ms <= 0 {
		return fmt.Errorf("%w: invalid valid-from timestamp", ErrSpam)
	}

	if time.UnixMilli(ms).After(h.now()) {
		return fmt.Errorf("%w: valid-from timestamp is in the future", ErrSpam)
	}

	return nil
}

// CheckRequest parses the request body (urlencoded or multipart) and runs
// Check on the resulting values. Parse failures are reported as
// ErrInvalidForm, not as spam.
func (h *Honeypot) CheckRequest(r *http.Request) error {
	mediaType := r.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	}

	return h.Check(r.Form)
}

// findRandomizedName locates the decoy field among the submitted keys when
// the name carries a per-render random suffix. Absence is not spam by
// itself; the empty string skips the decoy check.
func findRandomizedName(form url.Values, prefix string) string {
	for key := range form {
		if strings.HasPrefix(key, prefix) {
			return key
		}
	}
	return ""
}
