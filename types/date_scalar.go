package types

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DateScalarName is the schema type name of the Date scalar.
	DateScalarName = "Date"
	// DateScalarDescription is shown in introspection for the Date scalar.
	DateScalarDescription = "A Type representing a date (without time, only a day)"
	// DateScalarSpecifiedBy documents the yyyy/MM/dd format of the Date scalar.
	DateScalarSpecifiedBy = "https://github.com/spring-petclinic/spring-petclinic-graphql"
)

// ErrParseLiteralUnsupported is returned by ParseLiteral for every input.
// Dates must be passed as query variables.
var ErrParseLiteralUnsupported = errors.New("ParseLiteral in DateScalar not implemented yet")

// DateScalar converts CalendarDate values to and from their yyyy/MM/dd wire
// representation. It holds no mutable state and is safe for concurrent use.
type DateScalar struct {
	logger *zap.Logger
	gql    *graphql.Scalar
}

// NewDateScalar returns a DateScalar that reports parse failures to logger.
// A nil logger discards them.
func NewDateScalar(logger *zap.Logger) *DateScalar {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &DateScalar{logger: logger.Named("date-scalar")}
	s.gql = graphql.NewScalar(graphql.ScalarConfig{
		Name:        DateScalarName,
		Description: DateScalarDescription,
		Serialize: func(value interface{}) interface{} {
			return s.Serialize(ValueOf(value)).OrNil()
		},
		ParseValue: func(value interface{}) interface{} {
			return s.ParseValue(ValueOf(value)).OrNil()
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			var raw interface{}
			if valueAST != nil {
				raw = valueAST.GetValue()
			}
			// graphql-go has no error channel here; nil fails validation of the
			// whole operation.
			if _, err := s.ParseLiteral(ValueOf(raw)); err != nil {
				s.logger.Warn("rejected inline date literal", zap.Any("literal", raw), zap.Error(err))
			}
			return nil
		},
	})

	return s
}

// GraphQLType returns the graphql-go descriptor for the Date scalar. The same
// descriptor is returned on every call.
func (s *DateScalar) GraphQLType() *graphql.Scalar {
	return s.gql
}

// Serialize formats a CalendarDate for the response. The zero CalendarDate
// and any other input yield None without a diagnostic.
func (s *DateScalar) Serialize(v Value) Option[string] {
	switch v := v.(type) {
	case DateValue:
		if v.Date.IsZero() {
			return None[string]()
		}
		return Some(v.Date.String())
	case StringValue, OtherValue:
		return None[string]()
	}
	return None[string]()
}

// ParseValue coerces a query variable. A valid CalendarDate passes through as
// is; a string is parsed as yyyy/MM/dd. A malformed string is logged at error
// level and yields None, as do the zero CalendarDate and any other input.
func (s *DateScalar) ParseValue(v Value) Option[CalendarDate] {
	switch v := v.(type) {
	case DateValue:
		if v.Date.IsZero() {
			return None[CalendarDate]()
		}
		return Some(v.Date)
	case StringValue:
		d, err := ParseCalendarDate(v.Str)
		if err != nil {
			s.logger.Error("could not parse date from string",
				zap.String("value", v.Str),
				zap.Error(err),
			)
			return None[CalendarDate]()
		}
		return Some(d)
	case OtherValue:
		return None[CalendarDate]()
	}
	return None[CalendarDate]()
}

// ParseLiteral always fails with ErrParseLiteralUnsupported.
func (s *DateScalar) ParseLiteral(Value) (CalendarDate, error) {
	return CalendarDate{}, ErrParseLiteralUnsupported
}
