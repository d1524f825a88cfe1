package app

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"cronbuilder/internal/domain/expression"
)

var (
	// simpleCharacterRegex only tests a prefix of the token, or the presence of
	// "-" or "*" anywhere in it. Later stages narrow what gets through.
	simpleCharacterRegex = regexp.MustCompile(`^[0-9]{1,2}|[-*]`)

	// strictCharacterRegex is anchored on the whole token.
	strictCharacterRegex = regexp.MustCompile(`^(?:\*|-?[0-9]+|[0-9A-Z]+-[0-9A-Z]+)$`)

	negativeNumberRegex = regexp.MustCompile(`^-[0-9]+$`)
	leadingIntRegex     = regexp.MustCompile(`^-?[0-9]+`)
	digitsRegex         = regexp.MustCompile(`^[0-9]+$`)
)

// Validator checks expressions and single field values. It holds no state
// besides its mode and is safe for concurrent use.
type Validator struct {
	strict bool
}

type ValidatorOption func(*Validator)

// WithStrict anchors the character gate on whole tokens, requires both ends of
// a numeric range inside the field bounds, and makes ValidateExpression check
// the content of every field.
func WithStrict(strict bool) ValidatorOption {
	return func(v *Validator) {
		v.strict = strict
	}
}

func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Strict reports whether v runs in strict mode.
func (v *Validator) Strict() bool {
	return v.strict
}

// SplitExpression parses text into an Expression without checking its content.
func (v *Validator) SplitExpression(text string) (expression.Expression, error) {
	return expression.Split(text)
}

// ValidateExpression checks the shape of src: at most five fields. In strict
// mode every key must be a known field and every token-list must validate.
func (v *Validator) ValidateExpression(src expression.Source) error {
	var expr expression.Expression

	switch s := src.(type) {
	case expression.Text:
		if s == "" {
			return missingArgument("expression")
		}
		parsed, err := expression.Split(string(s))
		if err != nil {
			return err
		}
		expr = parsed
	case expression.Expression:
		if s == nil {
			return missingArgument("expression")
		}
		expr = s
	default:
		return missingArgument("expression")
	}

	if len(expr) > len(expression.Fields()) {
		return expression.Errorf(expression.ErrMalformedExpression, "", "",
			"Expression given is not a valid cron expression. Expected %d or less values, got: %d instead.",
			len(expression.Fields()), len(expr))
	}

	if !v.strict {
		return nil
	}
	for _, f := range expr.Keys() {
		if err := v.validateTokens(f, expr[f]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateString splits text and validates every field it contains.
func (v *Validator) ValidateString(text string) error {
	if text == "" {
		return missingArgument("expression")
	}

	expr, err := expression.Split(text)
	if err != nil {
		return err
	}
	for _, f := range expr.Keys() {
		if err := v.validateTokens(f, expr[f]); err != nil {
			return err
		}
	}
	return nil
}

// validateTokens validates a token-list the way a comma joined value would be.
func (v *Validator) validateTokens(field expression.Field, tokens []string) error {
	if len(tokens) == 0 {
		if !field.Known() {
			return unknownField(field)
		}
		return missingArgument("value")
	}
	return v.ValidateValue(field, strings.Join(tokens, ","))
}

// ValidateValue checks a single token or a comma separated list of tokens
// against the grammar and bounds of field.
func (v *Validator) ValidateValue(field expression.Field, value string) error {
	if field == "" {
		return missingArgument("field")
	}
	if value == "" {
		return missingArgument("value")
	}

	bounds, ok := expression.Bounds(field)
	if !ok {
		return unknownField(field)
	}

	if strings.Contains(value, ",") {
		return v.validateList(field, bounds, value)
	}
	return v.validateToken(field, bounds, value)
}

func (v *Validator) validateToken(field expression.Field, bounds expression.Range, value string) error {
	if !v.passesGate(value) && !field.HasSymbol(value) {
		if field.Symbolic() {
			return expression.Errorf(expression.ErrInvalidCharacter, field, value,
				`%s is not valid. Please use 0-9, "-", "*", %s`, value, strings.Join(field.Symbols(), ", "))
		}
		return expression.Errorf(expression.ErrInvalidCharacter, field, value,
			`%s is not valid. Please use 0-9, "-" or "*".`, value)
	}

	if value == expression.Wildcard {
		return nil
	}

	// A leading minus followed by digits is a negative number, not a range.
	if strings.Contains(value, "-") && !negativeNumberRegex.MatchString(value) {
		if err := v.validateRange(field, bounds, value); err != nil {
			return err
		}
	}

	// Re-checks the leading number of the whole token, so "70-10" on minute
	// fails here even though each range end passed on its own.
	if n, ok := leadingInt(value); ok {
		if n < bounds.Min {
			return tooSmall(field, bounds, value)
		}
		if n > bounds.Max {
			return tooLarge(field, bounds, value)
		}
	}
	return nil
}

func (v *Validator) validateRange(field expression.Field, bounds expression.Range, value string) error {
	parts := strings.Split(value, "-")
	if parts[0] == "" {
		return expression.Errorf(expression.ErrInvalidRange, field, value,
			"Invalid range %q. Please specify a minimum.", value)
	}
	if len(parts) < 2 || parts[1] == "" {
		return expression.Errorf(expression.ErrInvalidRange, field, value,
			"Invalid range %q. Please specify a maximum.", value)
	}
	if len(parts) > 2 {
		return expression.Errorf(expression.ErrInvalidRange, field, value,
			"Invalid range %q. A range has exactly two ends.", value)
	}
	lo, hi := parts[0], parts[1]

	if digitsRegex.MatchString(lo) && digitsRegex.MatchString(hi) {
		loN, hiN := atoi(lo), atoi(hi)
		if loN < bounds.Min {
			return tooSmall(field, bounds, lo)
		}
		if hiN > bounds.Max {
			return tooLarge(field, bounds, hi)
		}
		if v.strict {
			if loN > bounds.Max {
				return tooLarge(field, bounds, lo)
			}
			if hiN < bounds.Min {
				return tooSmall(field, bounds, hi)
			}
			if loN > hiN {
				return expression.Errorf(expression.ErrInvalidRange, field, value,
					"Invalid range %q. The lower end must not be greater than the upper end.", value)
			}
		}
		return nil
	}

	if err := checkSymbol(field, value, lo, "lower"); err != nil {
		return err
	}
	return checkSymbol(field, value, hi, "upper")
}

// checkSymbol checks one end of a range that is not purely numeric. Both ends
// must come from the abbreviation table of field.
func checkSymbol(field expression.Field, value, part, side string) error {
	if field.HasSymbol(part) {
		return nil
	}

	if !field.Symbolic() {
		return expression.Errorf(expression.ErrInvalidSymbol, field, value,
			`%s is not allowed in a "%s" range. Only "%s" and "%s" accept names.`,
			part, field, expression.FieldMonth, expression.FieldDayOfTheWeek)
	}

	tableName := "month"
	if field == expression.FieldDayOfTheWeek {
		tableName = "weekday"
	}

	switch {
	case digitsRegex.MatchString(part):
		return expression.Errorf(expression.ErrRangeTypeMismatch, field, value,
			"The %s part of the range is a number but the other part is a name. Both need to be a valid %s.",
			side, tableName)
	case expression.IsWeekday(part) || expression.IsMonth(part):
		return expression.Errorf(expression.ErrRangeTypeMismatch, field, value,
			"The %s part of the range is not a valid %s. Both need to be a valid %s.",
			side, tableName, tableName)
	}
	return expression.Errorf(expression.ErrInvalidSymbol, field, value,
		"%s is not an allowed %s. Please try use one of these: %s",
		part, tableName, strings.Join(field.Symbols(), ", "))
}

func (v *Validator) validateList(field expression.Field, bounds expression.Range, value string) error {
	for _, member := range strings.Split(value, ",") {
		if member == expression.Wildcard {
			return expression.Errorf(expression.ErrWildcardInList, field, value,
				`"*" is not allowed in a list.`)
		}

		if member == "" || (!v.passesGate(member) && !field.HasSymbol(member)) {
			switch field {
			case expression.FieldMonth:
				return expression.Errorf(expression.ErrInvalidListMember, field, member,
					"%s is not a valid value in a list of months.", member)
			case expression.FieldDayOfTheWeek:
				return expression.Errorf(expression.ErrInvalidListMember, field, member,
					"%s is not a valid value in a list of weekdays.", member)
			}
			return expression.Errorf(expression.ErrInvalidListMember, field, member,
				"%s is not a valid value in a list.", member)
		}

		if err := v.validateToken(field, bounds, member); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) passesGate(value string) bool {
	if v.strict {
		return strictCharacterRegex.MatchString(value)
	}
	return simpleCharacterRegex.MatchString(value)
}

// leadingInt parses the optional minus sign and digits at the start of s.
func leadingInt(s string) (int, bool) {
	m := leadingIntRegex.FindString(s)
	if m == "" {
		return 0, false
	}
	return atoi(m), true
}

// atoi saturates instead of failing on overflow; callers only compare against small bounds.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		if strings.HasPrefix(s, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}

func missingArgument(name string) error {
	return expression.Errorf(expression.ErrMissingArgument, "", "",
		"Missing argument: %q.", name)
}

func unknownField(field expression.Field) error {
	return expression.Errorf(expression.ErrUnknownField, field, "",
		"%s is not a valid field. Please try use one of these: %s",
		field, strings.Join(expression.FieldNames(), ", "))
}

func tooSmall(field expression.Field, bounds expression.Range, value string) error {
	return expression.Errorf(expression.ErrRangeTooSmall, field, value,
		`%s is too small for "%s" range. Minimum value is: %d`, value, field, bounds.Min)
}

func tooLarge(field expression.Field, bounds expression.Range, value string) error {
	return expression.Errorf(expression.ErrRangeTooLarge, field, value,
		`%s is too big for "%s" range. Maximum value is: %d`, value, field, bounds.Max)
}
