package types

// Value is an input handed to a scalar coercion by the schema engine.
// It is one of DateValue, StringValue or OtherValue.
type Value interface {
	isValue()
}

// DateValue carries a value that already is a CalendarDate.
type DateValue struct {
	Date CalendarDate
}

// StringValue carries a string, typically a query variable.
type StringValue struct {
	Str string
}

// OtherValue carries anything else: numbers, booleans, maps, nil.
type OtherValue struct {
	V interface{}
}

func (DateValue) isValue()   {}
func (StringValue) isValue() {}
func (OtherValue) isValue()  {}

// ValueOf classifies an untyped engine value. A non-nil *CalendarDate and
// *string are dereferenced; a nil pointer is an OtherValue.
func ValueOf(v interface{}) Value {
	switch v := v.(type) {
	case CalendarDate:
		return DateValue{Date: v}
	case *CalendarDate:
		if v != nil {
			return DateValue{Date: *v}
		}
	case string:
		return StringValue{Str: v}
	case *string:
		if v != nil {
			return StringValue{Str: *v}
		}
	}
	return OtherValue{V: v}
}
