package safety

import (
	"fmt"
	"math"
	"strings"

	"github.com/sundeepg98/computer-use-guard/internal/sanitize"
)

// Limits bounds the structural parameters of automation actions.
type Limits struct {
	MaxCoordinate  int
	MaxScroll      int
	MaxWaitSeconds float64
	MaxTextLength  int
}

// DefaultLimits returns the stock action limits.
func DefaultLimits() Limits {
	return Limits{
		MaxCoordinate:  10000,
		MaxScroll:      100,
		MaxWaitSeconds: 60,
		MaxTextLength:  10000,
	}
}

// ActionValidator checks the non-textual constraints of automation requests
// and delegates text-bearing fields to the text Validator.
type ActionValidator struct {
	text   *Validator
	limits Limits
}

// NewActionValidator wires an ActionValidator to a text Validator. Zero
// limit fields fall back to defaults.
func NewActionValidator(text *Validator, limits Limits) *ActionValidator {
	def := DefaultLimits()
	if limits.MaxCoordinate <= 0 {
		limits.MaxCoordinate = def.MaxCoordinate
	}
	if limits.MaxScroll <= 0 {
		limits.MaxScroll = def.MaxScroll
	}
	if limits.MaxWaitSeconds <= 0 {
		limits.MaxWaitSeconds = def.MaxWaitSeconds
	}
	if limits.MaxTextLength <= 0 {
		limits.MaxTextLength = def.MaxTextLength
	}
	return &ActionValidator{text: text, limits: limits}
}

// Text exposes the underlying text validator.
func (a *ActionValidator) Text() *Validator {
	return a.text
}

// ValidateAction checks one automation request. Structural violations and
// pattern matches come back as unsafe verdicts; a malformed request (wrong
// parameter type, missing parameter) returns an error wrapping
// ErrInvalidInput instead. Unknown action kinds are rejected as unsafe.
func (a *ActionValidator) ValidateAction(kind string, params map[string]any) (Verdict, error) {
	switch kind {
	case "click":
		return a.validateClick(params)
	case "move":
		return a.validatePoint(params, "x", "y")
	case "drag":
		return a.validateDrag(params)
	case "scroll":
		return a.validateScroll(params)
	case "key":
		return a.validateKey(params)
	case "type":
		return a.validateType(params)
	case "wait":
		return a.validateWait(params)
	default:
		return Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("unknown action kind %q", sanitize.String(kind)),
		}, nil
	}
}

func (a *ActionValidator) validateClick(params map[string]any) (Verdict, error) {
	verdict, err := a.validatePoint(params, "x", "y")
	if err != nil || !verdict.Safe {
		return verdict, err
	}
	if raw, ok := params["button"]; ok {
		button, ok := raw.(string)
		if !ok {
			return Verdict{}, fmt.Errorf("%w: parameter \"button\" must be a string", ErrInvalidInput)
		}
		switch button {
		case "left", "right", "middle":
		default:
			return Verdict{
				Safe:   false,
				Reason: fmt.Sprintf("invalid button %q, must be left, right or middle", sanitize.String(button)),
				Field:  "button",
			}, nil
		}
	}
	return Verdict{Safe: true}, nil
}

func (a *ActionValidator) validatePoint(params map[string]any, xField, yField string) (Verdict, error) {
	for _, field := range []string{xField, yField} {
		value, err := intParam(params, field)
		if err != nil {
			return Verdict{}, err
		}
		if bad := a.coordinateVerdict(value, field); bad != nil {
			return *bad, nil
		}
	}
	return Verdict{Safe: true}, nil
}

func (a *ActionValidator) coordinateVerdict(value int, field string) *Verdict {
	if value < 0 {
		return &Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("%s must be non-negative, got %d", field, value),
			Field:  field,
		}
	}
	if value > a.limits.MaxCoordinate {
		return &Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("%s exceeds maximum coordinate %d", field, a.limits.MaxCoordinate),
			Field:  field,
		}
	}
	return nil
}

func (a *ActionValidator) validateDrag(params map[string]any) (Verdict, error) {
	coords := make(map[string]int, 4)
	for _, field := range []string{"x1", "y1", "x2", "y2"} {
		value, err := intParam(params, field)
		if err != nil {
			return Verdict{}, err
		}
		if bad := a.coordinateVerdict(value, field); bad != nil {
			return *bad, nil
		}
		coords[field] = value
	}
	// Dragging to or from the exact screen origin is a common signature of
	// degenerate or scripted mis-fires.
	if (coords["x1"] == 0 && coords["y1"] == 0) || (coords["x2"] == 0 && coords["y2"] == 0) {
		return Verdict{
			Safe:   false,
			Reason: "suspicious drag to/from screen corner",
		}, nil
	}
	return Verdict{Safe: true}, nil
}

func (a *ActionValidator) validateScroll(params map[string]any) (Verdict, error) {
	direction := "down"
	if raw, ok := params["direction"]; ok {
		s, ok := raw.(string)
		if !ok {
			return Verdict{}, fmt.Errorf("%w: parameter \"direction\" must be a string", ErrInvalidInput)
		}
		direction = s
	}
	switch direction {
	case "up", "down", "left", "right":
	default:
		return Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("invalid scroll direction %q", sanitize.String(direction)),
			Field:  "direction",
		}, nil
	}

	amount := 3
	if _, ok := params["amount"]; ok {
		value, err := intParam(params, "amount")
		if err != nil {
			return Verdict{}, err
		}
		amount = value
	}
	if amount < 1 {
		return Verdict{
			Safe:   false,
			Reason: "scroll amount must be positive",
			Field:  "amount",
		}, nil
	}
	if amount > a.limits.MaxScroll {
		return Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("scroll amount %d exceeds maximum %d", amount, a.limits.MaxScroll),
			Field:  "amount",
		}, nil
	}
	return Verdict{Safe: true}, nil
}

func (a *ActionValidator) validateKey(params map[string]any) (Verdict, error) {
	combo, err := stringParam(params, "combo", "key")
	if err != nil {
		return Verdict{}, err
	}

	lowered := strings.ToLower(strings.TrimSpace(combo))
	if effect, ok := blockedCombos[lowered]; ok {
		return Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("system key combination %q blocked: %s", combo, effect),
			Field:  "combo",
		}, nil
	}

	tokens := strings.Split(combo, "+")
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Verdict{
				Safe:   false,
				Reason: "empty key token in combination",
				Field:  "combo",
			}, nil
		}
		if isModifier(tok) {
			continue
		}
		if isKnownKey(tok) {
			continue
		}
		reason := fmt.Sprintf("unknown key %q", sanitize.String(tok))
		if i < len(tokens)-1 {
			reason = fmt.Sprintf("unknown modifier %q", sanitize.String(tok))
		}
		if suggestions := suggestKeys(tok, 3); len(suggestions) > 0 {
			reason += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		return Verdict{
			Safe:   false,
			Reason: reason,
			Field:  "combo",
		}, nil
	}

	// The combo string is also screened as text to catch injection
	// payloads smuggled into key names.
	return a.text.ValidateText(combo), nil
}

func (a *ActionValidator) validateType(params map[string]any) (Verdict, error) {
	text, err := stringParam(params, "text")
	if err != nil {
		return Verdict{}, err
	}
	if len(text) > a.limits.MaxTextLength {
		return Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("text length %d exceeds maximum %d", len(text), a.limits.MaxTextLength),
			Field:  "text",
		}, nil
	}
	return a.text.ValidateText(text), nil
}

func (a *ActionValidator) validateWait(params map[string]any) (Verdict, error) {
	seconds, err := floatParam(params, "seconds")
	if err != nil {
		return Verdict{}, err
	}
	if seconds <= 0 {
		return Verdict{
			Safe:   false,
			Reason: "wait duration must be positive",
			Field:  "seconds",
		}, nil
	}
	if seconds > a.limits.MaxWaitSeconds {
		return Verdict{
			Safe:   false,
			Reason: fmt.Sprintf("wait duration %g exceeds maximum %g seconds", seconds, a.limits.MaxWaitSeconds),
			Field:  "seconds",
		}, nil
	}
	return Verdict{Safe: true}, nil
}

// intParam extracts an integral numeric parameter. JSON decoding hands
// numbers over as float64, so integral floats are accepted.
func intParam(params map[string]any, name string) (int, error) {
	raw, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing parameter %q", ErrInvalidInput, name)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: parameter %q must be an integer", ErrInvalidInput, name)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("%w: parameter %q must be an integer", ErrInvalidInput, name)
}

func floatParam(params map[string]any, name string) (float64, error) {
	raw, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing parameter %q", ErrInvalidInput, name)
	}
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("%w: parameter %q must be a number", ErrInvalidInput, name)
}

// stringParam extracts a string parameter, trying each name in order.
func stringParam(params map[string]any, names ...string) (string, error) {
	for _, name := range names {
		raw, ok := params[name]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return "", fmt.Errorf("%w: parameter %q must be a string", ErrInvalidInput, name)
		}
		return s, nil
	}
	return "", fmt.Errorf("%w: missing parameter %q", ErrInvalidInput, names[0])
}
