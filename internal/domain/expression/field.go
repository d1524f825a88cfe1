// internal/domain/expression/field.go
package expression

// Field identifies one of the five positions of a cron expression.
type Field string

const (
	FieldMinute        Field = "minute"
	FieldHour          Field = "hour"
	FieldDayOfTheMonth Field = "dayOfTheMonth"
	FieldMonth         Field = "month"
	FieldDayOfTheWeek  Field = "dayOfTheWeek"
)

// Wildcard is the token that matches every value of a field.
const Wildcard = "*"

// Range is the closed numeric interval a field accepts.
type Range struct {
	Min int
	Max int
}

// fields is positional: the n-th segment of an expression string belongs to fields[n].
var fields = [...]Field{
	FieldMinute,
	FieldHour,
	FieldDayOfTheMonth,
	FieldMonth,
	FieldDayOfTheWeek,
}

var bounds = map[Field]Range{
	FieldMinute:        {Min: 0, Max: 59},
	FieldHour:          {Min: 0, Max: 23},
	FieldDayOfTheMonth: {Min: 1, Max: 31},
	FieldMonth:         {Min: 1, Max: 12},
	FieldDayOfTheWeek:  {Min: 0, Max: 7}, // 0 and 7 are both Sunday
}

// Sun is index 0.
var weekdays = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Jan is index 0 here but month 1 in an expression.
var months = [...]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// Fields returns the five fields in expression order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields[:])
	return out
}

// FieldAt returns the field for a positional segment index.
func FieldAt(i int) (Field, bool) {
	if i < 0 || i >= len(fields) {
		return "", false
	}
	return fields[i], true
}

// Bounds returns the numeric range of f.
func Bounds(f Field) (Range, bool) {
	r, ok := bounds[f]
	return r, ok
}

// Known reports whether f is one of the five fields.
func (f Field) Known() bool {
	_, ok := bounds[f]
	return ok
}

// Symbolic reports whether f accepts name abbreviations.
func (f Field) Symbolic() bool {
	return f == FieldMonth || f == FieldDayOfTheWeek
}

// Symbols returns the abbreviation table of f, or nil if f has none.
func (f Field) Symbols() []string {
	switch f {
	case FieldMonth:
		return Months()
	case FieldDayOfTheWeek:
		return Weekdays()
	}
	return nil
}

// HasSymbol reports whether s is one of the abbreviations f accepts.
func (f Field) HasSymbol(s string) bool {
	switch f {
	case FieldMonth:
		return IsMonth(s)
	case FieldDayOfTheWeek:
		return IsWeekday(s)
	}
	return false
}

func (f Field) String() string {
	return string(f)
}

// Weekdays returns SUN..SAT.
func Weekdays() []string {
	out := make([]string, len(weekdays))
	copy(out, weekdays[:])
	return out
}

// Months returns JAN..DEC.
func Months() []string {
	out := make([]string, len(months))
	copy(out, months[:])
	return out
}

func IsWeekday(s string) bool {
	for _, d := range weekdays {
		if d == s {
			return true
		}
	}
	return false
}

func IsMonth(s string) bool {
	for _, m := range months {
		if m == s {
			return true
		}
	}
	return false
}

// FieldNames returns the field identifiers as plain strings, used in error messages.
func FieldNames() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}
