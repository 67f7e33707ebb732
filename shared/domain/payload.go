package domain

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sembang-dev/sembang/shared/errors"
)

// Payload is an untyped mapping as produced by decoding a JSON object or
// scanning a row by column name.
type Payload map[string]any

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindTime
	kindList
)

type field struct {
	name string
	kind fieldKind
}

// shape lists the required fields of a payload and the messages reported
// when the payload does not fit.
type shape struct {
	fields     []field
	missingMsg string
	typeMsg    string
	valueMsg   string
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// check reports MissingField before InvalidType: every field is checked for
// presence first, then every field for its type.
func (s shape) check(p Payload) error {
	for _, f := range s.fields {
		if isMissing(p[f.name]) {
			return &errors.Error{Kind: errors.MissingField, Message: s.missingMsg}
		}
	}
	for _, f := range s.fields {
		if !f.kind.matches(p[f.name]) {
			return &errors.Error{Kind: errors.InvalidType, Message: s.typeMsg}
		}
	}
	return nil
}

// constraints runs the validator tags of the typed record.
func (s shape) constraints(v any) error {
	if err := validate.Struct(v); err != nil {
		return &errors.Error{Kind: errors.InvalidValue, Message: s.valueMsg}
	}
	return nil
}

// empty strings count as missing
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}

func (k fieldKind) matches(v any) bool {
	switch k {
	case kindString:
		_, ok := v.(string)
		return ok
	case kindBool:
		_, ok := v.(bool)
		return ok
	case kindTime:
		_, ok := asTime(v)
		return ok
	case kindList:
		switch v.(type) {
		case []any, []DetailReply, []ReplyRecord:
			return true
		}
		return false
	}
	return false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		return parsed, err == nil
	}
	return time.Time{}, false
}

// getters are only called after check succeeded

func (p Payload) str(name string) string {
	s, _ := p[name].(string)
	return s
}

func (p Payload) boolean(name string) bool {
	b, _ := p[name].(bool)
	return b
}

func (p Payload) timestamp(name string) time.Time {
	t, _ := asTime(p[name])
	return t
}
