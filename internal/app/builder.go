package app

import (
	"slices"
	"strings"

	"cronbuilder/internal/domain/expression"
	"cronbuilder/internal/infra/cronparser"
	"cronbuilder/internal/infra/logger"

	"github.com/sirupsen/logrus"
)

// Builder owns one Expression and mutates it through the Validator.
// A Builder must not be mutated from several goroutines without external locking.
type Builder struct {
	expression expression.Expression
	validator  *Validator
	logger     *logrus.Entry
}

type BuilderOption func(*Builder)

// WithLogger sets the entry mutations are logged to.
func WithLogger(entry *logrus.Entry) BuilderOption {
	return func(b *Builder) {
		b.logger = entry
	}
}

// WithValidator replaces the default lenient Validator.
func WithValidator(v *Validator) BuilderOption {
	return func(b *Builder) {
		b.validator = v
	}
}

// NewBuilder creates a Builder from an initial expression string. An empty
// string yields the all-wildcard expression.
func NewBuilder(initial string, opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		validator: NewValidator(),
		logger:    logger.ForComponent("builder"),
	}
	for _, opt := range opts {
		opt(b)
	}

	if initial == "" {
		b.expression = expression.Default()
		return b, nil
	}

	if err := b.validator.ValidateExpression(expression.Text(initial)); err != nil {
		b.logger.WithError(err).WithField("expression", initial).Debug("Rejected initial expression")
		return nil, err
	}
	expr, err := b.validator.SplitExpression(initial)
	if err != nil {
		return nil, err
	}
	b.expression = expr
	b.logger.WithField("expression", initial).Debug("Builder created")
	return b, nil
}

// Build serializes the expression to the canonical five field string.
func (b *Builder) Build() string {
	return b.expression.Format()
}

func (b *Builder) String() string {
	return b.Build()
}

// AddValue adds value to field. A comma list adds each of its tokens.
// A wildcard field is replaced by the new tokens; otherwise tokens already
// present are skipped. Adding the wildcard itself resets the field.
func (b *Builder) AddValue(field expression.Field, value string) error {
	tokens, err := b.checkValue(field, value)
	if err != nil {
		b.rejected(err, field, value).Debug("Rejected value")
		return err
	}

	if value == expression.Wildcard {
		b.expression[field] = expression.DefaultInterval()
		b.logger.WithFields(logrus.Fields{"field": field, "value": value}).Debug("Field reset")
		return nil
	}

	current := b.expression[field]
	if expression.IsDefault(current) {
		current = nil
	}
	next := slices.Clone(current)
	for _, token := range tokens {
		if !slices.Contains(next, token) {
			next = append(next, token)
		}
	}
	if len(next) == len(current) {
		b.logger.WithFields(logrus.Fields{"field": field, "value": value}).Debug("Value already present")
		return nil
	}
	b.expression[field] = next

	b.logger.WithFields(logrus.Fields{"field": field, "value": value}).Debug("Value added")
	return nil
}

// RemoveValue removes value, or every token of a comma list, from field.
// Removing the last value resets the field to the wildcard. A field at the
// wildcard cannot be changed this way.
func (b *Builder) RemoveValue(field expression.Field, value string) error {
	tokens, err := b.checkValue(field, value)
	if err != nil {
		b.rejected(err, field, value).Debug("Rejected value")
		return err
	}

	current := b.expression[field]
	if len(current) == 0 || expression.IsDefault(current) {
		err := expression.Errorf(expression.ErrCannotModifyDefault, field, value,
			`The default interval for "%s" is "*", won't change.`, field)
		b.rejected(err, field, value).Debug("Rejected removal")
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(current), func(token string) bool {
		return slices.Contains(tokens, token)
	})
	if len(remaining) == 0 {
		remaining = expression.DefaultInterval()
	}
	b.expression[field] = remaining

	b.logger.WithFields(logrus.Fields{"field": field, "value": value}).Debug("Value removed")
	return nil
}

// Get returns the comma joined token-list of field.
func (b *Builder) Get(field expression.Field) (string, error) {
	tokens, ok := b.expression[field]
	if !ok {
		return "", unknownField(field)
	}
	return strings.Join(tokens, ","), nil
}

// GetAll returns a copy of the expression. Changing it does not affect b;
// use Set or SetAll to write back.
func (b *Builder) GetAll() expression.Expression {
	return b.expression.Clone()
}

// Set replaces the token-list of field with values and returns it comma joined.
// Comma lists among values are broken into tokens and duplicates dropped.
func (b *Builder) Set(field expression.Field, values []string) (string, error) {
	if len(values) == 0 {
		err := expression.Errorf(expression.ErrTypeMismatch, field, "",
			"Value needs to be a non-empty list of tokens. Got %d tokens instead.", len(values))
		b.rejected(err, field, "").Debug("Rejected set")
		return "", err
	}

	var tokens []string
	for _, value := range values {
		split, err := b.checkValue(field, value)
		if err != nil {
			b.rejected(err, field, value).Debug("Rejected set")
			return "", err
		}
		for _, token := range split {
			if !slices.Contains(tokens, token) {
				tokens = append(tokens, token)
			}
		}
	}
	if len(tokens) > 1 && slices.Contains(tokens, expression.Wildcard) {
		err := expression.Errorf(expression.ErrWildcardInList, field, expression.Wildcard,
			`"*" is not allowed in a list.`)
		b.rejected(err, field, expression.Wildcard).Debug("Rejected set")
		return "", err
	}
	b.expression[field] = tokens

	joined := strings.Join(tokens, ",")
	b.logger.WithFields(logrus.Fields{"field": field, "value": joined}).Debug("Field set")
	return joined, nil
}

// SetAll replaces the whole expression. Only the shape is checked unless the
// Builder's Validator is strict, so a lenient Builder can hold tokens that
// ValidateString would refuse.
func (b *Builder) SetAll(expr expression.Expression) error {
	if err := b.validator.ValidateExpression(expr); err != nil {
		b.logger.WithError(err).Debug("Rejected expression")
		return err
	}

	b.expression = expr.Clone()
	b.logger.WithField("expression", b.expression.Format()).Debug("Expression replaced")
	return nil
}

// CheckStandard reports whether the built expression is accepted by the
// standard five field cron parser.
func (b *Builder) CheckStandard() error {
	return cronparser.Check(b.Build())
}

func (b *Builder) rejected(err error, field expression.Field, value string) *logrus.Entry {
	return b.logger.WithError(err).WithFields(logrus.Fields{"field": field, "value": value})
}

// checkValue validates value for field and returns its tokens. Whitespace
// is refused here because Build separates fields with spaces.
func (b *Builder) checkValue(field expression.Field, value string) ([]string, error) {
	if err := b.validator.ValidateValue(field, value); err != nil {
		return nil, err
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return nil, expression.Errorf(expression.ErrInvalidCharacter, field, value,
			"%q is not valid. A value must not contain whitespace.", value)
	}
	return strings.Split(value, ","), nil
}
