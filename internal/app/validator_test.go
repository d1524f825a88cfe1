package app

import (
	"errors"
	"testing"

	"cronbuilder/internal/domain/expression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valueCase struct {
	field expression.Field
	value string
	want  error
}

func runValueCases(t *testing.T, v *Validator, cases []valueCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(string(tc.field)+"/"+tc.value, func(t *testing.T) {
			err := v.ValidateValue(tc.field, tc.value)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want kind %v", err, tc.want)

			var e *expression.Error
			require.True(t, errors.As(err, &e))
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestValidateValue_Arguments(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{"", "1", expression.ErrMissingArgument},
		{expression.FieldMinute, "", expression.ErrMissingArgument},
		{"second", "1", expression.ErrUnknownField},
	})
}

func TestValidateValue_UnknownFieldListsValidNames(t *testing.T) {
	err := NewValidator().ValidateValue("second", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minute, hour, dayOfTheMonth, month, dayOfTheWeek")
}

func TestValidateValue_Bounds(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{expression.FieldMinute, "0", nil},
		{expression.FieldMinute, "59", nil},
		{expression.FieldMinute, "60", expression.ErrRangeTooLarge},
		{expression.FieldMinute, "-1", expression.ErrRangeTooSmall},
		{expression.FieldMinute, "*", nil},
		{expression.FieldMinute, "99999999999999999999", expression.ErrRangeTooLarge},
		{expression.FieldHour, "23", nil},
		{expression.FieldHour, "24", expression.ErrRangeTooLarge},
		{expression.FieldDayOfTheMonth, "0", expression.ErrRangeTooSmall},
		{expression.FieldDayOfTheMonth, "1", nil},
		{expression.FieldDayOfTheMonth, "31", nil},
		{expression.FieldDayOfTheMonth, "32", expression.ErrRangeTooLarge},
		{expression.FieldMonth, "0", expression.ErrRangeTooSmall},
		{expression.FieldMonth, "12", nil},
		{expression.FieldMonth, "13", expression.ErrRangeTooLarge},
		{expression.FieldDayOfTheWeek, "0", nil},
		{expression.FieldDayOfTheWeek, "7", nil},
		{expression.FieldDayOfTheWeek, "8", expression.ErrRangeTooLarge},
	})
}

func TestValidateValue_Characters(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{expression.FieldMinute, "x5", expression.ErrInvalidCharacter},
		{expression.FieldHour, "JAN", expression.ErrInvalidCharacter},
		{expression.FieldMonth, "JAN", nil},
		{expression.FieldMonth, "DEC", nil},
		{expression.FieldMonth, "FOO", expression.ErrInvalidCharacter},
		{expression.FieldMonth, "MON", expression.ErrInvalidCharacter},
		{expression.FieldMonth, "jan", expression.ErrInvalidCharacter},
		{expression.FieldDayOfTheWeek, "SUN", nil},
		{expression.FieldDayOfTheWeek, "MONDAY", expression.ErrInvalidCharacter},
		{expression.FieldDayOfTheWeek, "JAN", expression.ErrInvalidCharacter},
	})
}

// The lenient gate only inspects a prefix of the token, so trailing garbage
// after a leading number is accepted.
func TestValidateValue_LenientGateAcceptsPrefix(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{expression.FieldMinute, "5x", nil},
		{expression.FieldMinute, "*5", nil},
		{expression.FieldDayOfTheWeek, "1MON", nil},
		{expression.FieldMinute, "75x", expression.ErrRangeTooLarge},
	})
}

func TestValidateValue_Ranges(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{expression.FieldMinute, "1-5", nil},
		{expression.FieldMinute, "0-59", nil},
		{expression.FieldMinute, "10-70", expression.ErrRangeTooLarge},
		{expression.FieldMinute, "70-10", expression.ErrRangeTooLarge},
		{expression.FieldDayOfTheMonth, "0-5", expression.ErrRangeTooSmall},
		{expression.FieldMinute, "5-", expression.ErrInvalidRange},
		{expression.FieldMinute, "-", expression.ErrInvalidRange},
		{expression.FieldMinute, "1-2-3", expression.ErrInvalidRange},
		{expression.FieldMinute, "MON-FRI", expression.ErrInvalidSymbol},
		{expression.FieldMinute, "1a-5", expression.ErrInvalidSymbol},
		// Only the outer ends are checked in lenient mode.
		{expression.FieldMinute, "5-3", nil},
	})
}

func TestValidateValue_SymbolicRanges(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{expression.FieldDayOfTheWeek, "MON-FRI", nil},
		{expression.FieldDayOfTheWeek, "SUN-SAT", nil},
		{expression.FieldDayOfTheWeek, "0-7", nil},
		{expression.FieldDayOfTheWeek, "MON-13", expression.ErrRangeTypeMismatch},
		{expression.FieldDayOfTheWeek, "1-MON", expression.ErrRangeTypeMismatch},
		{expression.FieldDayOfTheWeek, "MON-JAN", expression.ErrRangeTypeMismatch},
		{expression.FieldDayOfTheWeek, "MON-FOO", expression.ErrInvalidSymbol},
		{expression.FieldMonth, "JAN-DEC", nil},
		{expression.FieldMonth, "JAN-MON", expression.ErrRangeTypeMismatch},
		{expression.FieldMonth, "FOO-DEC", expression.ErrInvalidSymbol},
	})
}

func TestValidateValue_RangeMessagesNameTheSide(t *testing.T) {
	err := NewValidator().ValidateValue(expression.FieldMonth, "JAN-MON")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upper part")

	err = NewValidator().ValidateValue(expression.FieldDayOfTheWeek, "3-FRI")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lower part")
}

func TestValidateValue_Lists(t *testing.T) {
	runValueCases(t, NewValidator(), []valueCase{
		{expression.FieldHour, "1,2,3", nil},
		{expression.FieldHour, "*,5", expression.ErrWildcardInList},
		{expression.FieldHour, "5,*", expression.ErrWildcardInList},
		{expression.FieldMinute, "1,60", expression.ErrRangeTooLarge},
		{expression.FieldMinute, "1,,2", expression.ErrInvalidListMember},
		{expression.FieldMinute, "1,x", expression.ErrInvalidListMember},
		{expression.FieldMinute, "1-5,10-15", nil},
		{expression.FieldDayOfTheWeek, "MON,WED", nil},
		{expression.FieldDayOfTheWeek, "MON,FOO", expression.ErrInvalidListMember},
		{expression.FieldDayOfTheWeek, "MON-FRI,SUN", nil},
		{expression.FieldMonth, "JAN,FOO", expression.ErrInvalidListMember},
		{expression.FieldMonth, "JAN,13", expression.ErrRangeTooLarge},
	})
}

func TestValidateValue_ListMemberMessages(t *testing.T) {
	err := NewValidator().ValidateValue(expression.FieldMonth, "JAN,FOO")
	require.Error(t, err)
	assert.Equal(t, "FOO is not a valid value in a list of months.", err.Error())

	err = NewValidator().ValidateValue(expression.FieldDayOfTheWeek, "FOO,MON")
	require.Error(t, err)
	assert.Equal(t, "FOO is not a valid value in a list of weekdays.", err.Error())

	err = NewValidator().ValidateValue(expression.FieldMinute, "1,x")
	require.Error(t, err)
	assert.Equal(t, "x is not a valid value in a list.", err.Error())
}

func TestValidateValue_Strict(t *testing.T) {
	v := NewValidator(WithStrict(true))
	require.True(t, v.Strict())

	runValueCases(t, v, []valueCase{
		{expression.FieldMinute, "5", nil},
		{expression.FieldMinute, "*", nil},
		{expression.FieldMinute, "5x", expression.ErrInvalidCharacter},
		{expression.FieldMinute, "*5", expression.ErrInvalidCharacter},
		{expression.FieldMinute, "100", expression.ErrRangeTooLarge},
		{expression.FieldMinute, "-1", expression.ErrRangeTooSmall},
		{expression.FieldMinute, "5-3", expression.ErrInvalidRange},
		{expression.FieldMinute, "60-70", expression.ErrRangeTooLarge},
		{expression.FieldMinute, "1,5x", expression.ErrInvalidListMember},
		{expression.FieldDayOfTheWeek, "1MON", expression.ErrInvalidCharacter},
		{expression.FieldDayOfTheWeek, "MON-FRI", nil},
		{expression.FieldMonth, "JAN", nil},
		{expression.FieldMonth, "JAN,MAR", nil},
	})
}

func TestSplitExpression(t *testing.T) {
	v := NewValidator()

	expr, err := v.SplitExpression("0 0 * * MON,WED")
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, expr[expression.FieldMonth])
	assert.Equal(t, []string{"MON", "WED"}, expr[expression.FieldDayOfTheWeek])

	_, err = v.SplitExpression("1 2 3 4 5 6")
	assert.ErrorIs(t, err, expression.ErrMalformedExpression)
}

func TestValidateExpression(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateExpression(expression.Text("0 0 * * *")))
	assert.NoError(t, v.ValidateExpression(expression.Default()))
	assert.ErrorIs(t, v.ValidateExpression(expression.Text("")), expression.ErrMissingArgument)
	assert.ErrorIs(t, v.ValidateExpression(expression.Expression(nil)), expression.ErrMissingArgument)
	assert.ErrorIs(t, v.ValidateExpression(nil), expression.ErrMissingArgument)
	assert.ErrorIs(t, v.ValidateExpression(expression.Text("1 2 3 4 5 6")), expression.ErrMalformedExpression)

	six := expression.Default()
	six["second"] = []string{"0"}
	assert.ErrorIs(t, v.ValidateExpression(six), expression.ErrMalformedExpression)
}

// ValidateExpression only checks shape in lenient mode: content that
// ValidateString refuses still passes.
func TestValidateExpression_ShapeOnly(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateExpression(expression.Text("99 99 99 99 99")))
	assert.ErrorIs(t, v.ValidateString("99 99 99 99 99"), expression.ErrRangeTooLarge)

	unknown := expression.Expression{"second": {"0"}}
	assert.NoError(t, v.ValidateExpression(unknown))
}

func TestValidateExpression_Strict(t *testing.T) {
	v := NewValidator(WithStrict(true))

	assert.NoError(t, v.ValidateExpression(expression.Text("0 0 * * MON")))
	assert.ErrorIs(t, v.ValidateExpression(expression.Text("99 99 99 99 99")), expression.ErrRangeTooLarge)

	unknown := expression.Expression{"second": {"0"}}
	assert.ErrorIs(t, v.ValidateExpression(unknown), expression.ErrUnknownField)

	empty := expression.Expression{expression.FieldHour: {}}
	assert.ErrorIs(t, v.ValidateExpression(empty), expression.ErrMissingArgument)
}

func TestValidateString(t *testing.T) {
	v := NewValidator()

	for _, text := range []string{
		"0 0 * * *",
		"0 0 * * MON,WED",
		"5 * * * *",
		"0,15,30,45 8-17 1 JAN-JUN MON-FRI",
		"0 0",
	} {
		assert.NoError(t, v.ValidateString(text), text)
	}

	tests := []struct {
		text string
		want error
	}{
		{"", expression.ErrMissingArgument},
		{"60 0 * * *", expression.ErrRangeTooLarge},
		{"0 0 0 * *", expression.ErrRangeTooSmall},
		{"0 0 * FOO *", expression.ErrInvalidCharacter},
		{"0 0 * * MON,FOO", expression.ErrInvalidListMember},
		{"0 *,1 * * *", expression.ErrWildcardInList},
		{"1 2 3 4 5 6", expression.ErrMalformedExpression},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, v.ValidateString(tt.text), tt.want, tt.text)
	}
}
