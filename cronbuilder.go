// Package cronbuilder parses, validates and incrementally edits five field cron
// expressions ("minute hour dayOfTheMonth month dayOfTheWeek").
//
// It does not evaluate schedules. A Builder holds one expression and routes
// every mutation through a Validator:
//
//	b, _ := cronbuilder.New("0 0 * * *")
//	_ = b.AddValue(cronbuilder.DayOfTheWeek, "MON")
//	_ = b.AddValue(cronbuilder.DayOfTheWeek, "WED")
//	b.Build() // "0 0 * * MON,WED"
package cronbuilder

import (
	"fmt"

	"cronbuilder/internal/app"
	"cronbuilder/internal/domain/expression"
	"cronbuilder/internal/infra/config"
	"cronbuilder/internal/infra/cronparser"
	"cronbuilder/internal/infra/logger"
)

type (
	Field      = expression.Field
	Expression = expression.Expression
	Source     = expression.Source
	Text       = expression.Text
	Range      = expression.Range
	Error      = expression.Error

	Validator       = app.Validator
	ValidatorOption = app.ValidatorOption
	Builder         = app.Builder
	BuilderOption   = app.BuilderOption
)

const (
	Minute        = expression.FieldMinute
	Hour          = expression.FieldHour
	DayOfTheMonth = expression.FieldDayOfTheMonth
	Month         = expression.FieldMonth
	DayOfTheWeek  = expression.FieldDayOfTheWeek

	Wildcard = expression.Wildcard
)

var (
	ErrMissingArgument     = expression.ErrMissingArgument
	ErrMalformedExpression = expression.ErrMalformedExpression
	ErrUnknownField        = expression.ErrUnknownField
	ErrInvalidCharacter    = expression.ErrInvalidCharacter
	ErrInvalidRange        = expression.ErrInvalidRange
	ErrRangeTooSmall       = expression.ErrRangeTooSmall
	ErrRangeTooLarge       = expression.ErrRangeTooLarge
	ErrInvalidSymbol       = expression.ErrInvalidSymbol
	ErrRangeTypeMismatch   = expression.ErrRangeTypeMismatch
	ErrWildcardInList      = expression.ErrWildcardInList
	ErrInvalidListMember   = expression.ErrInvalidListMember
	ErrCannotModifyDefault = expression.ErrCannotModifyDefault
	ErrTypeMismatch        = expression.ErrTypeMismatch
)

var (
	NewValidator  = app.NewValidator
	WithStrict    = app.WithStrict
	WithLogger    = app.WithLogger
	WithValidator = app.WithValidator

	Fields          = expression.Fields
	Bounds          = expression.Bounds
	Weekdays        = expression.Weekdays
	Months          = expression.Months
	DefaultInterval = expression.DefaultInterval
)

var defaultValidator = app.NewValidator()

// New creates a Builder. An empty initial string gives "* * * * *".
func New(initial string, opts ...BuilderOption) (*Builder, error) {
	return app.NewBuilder(initial, opts...)
}

// NewFromEnv loads configuration from the environment (and a .env file if
// present), initializes the global logger and returns a Builder seeded with
// CRON_EXPRESSION.
func NewFromEnv() (*Builder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	logger.Init(cfg)

	b, err := app.NewBuilder(cfg.Expression,
		app.WithValidator(app.NewValidator(app.WithStrict(cfg.Strict))),
		app.WithLogger(logger.ForComponent("builder")),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_EXPRESSION: %w", err)
	}
	return b, nil
}

// SplitExpression parses text positionally into an Expression without
// validating its tokens.
func SplitExpression(text string) (Expression, error) {
	return defaultValidator.SplitExpression(text)
}

// ValidateExpression checks that src (Text or Expression) has at most five
// fields. It does not validate field content; use ValidateString for that.
func ValidateExpression(src Source) error {
	return defaultValidator.ValidateExpression(src)
}

// ValidateString fully validates an expression string.
func ValidateString(text string) error {
	return defaultValidator.ValidateString(text)
}

// ValidateValue validates one token, or a comma separated list, for field.
func ValidateValue(field Field, value string) error {
	return defaultValidator.ValidateValue(field, value)
}

// CheckStandard reports whether expr is accepted by the standard cron parser.
func CheckStandard(expr string) error {
	return cronparser.Check(expr)
}
