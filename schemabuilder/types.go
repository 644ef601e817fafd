package schemabuilder

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

//Object - an Object collects the fields of a GraphQL object type. Fields are
// resolved lazily, so objects may reference each other before registration is
// complete.
type Object struct {
	Name        string
	Description string

	fields graphql.Fields
	gql    *graphql.Object
}

func newObject(name, description string) *Object {
	o := &Object{Name: name, Description: description, fields: graphql.Fields{}}
	o.gql = graphql.NewObject(graphql.ObjectConfig{
		Name:        name,
		Description: description,
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return o.fields
		}),
	})
	return o
}

// FieldOption customises a field registered through FieldFunc.
type FieldOption func(*graphql.Field)

// FieldDesc sets the field description shown in introspection.
func FieldDesc(description string) FieldOption {
	return func(f *graphql.Field) {
		f.Description = description
	}
}

// FieldArgs declares the arguments accepted by the field.
func FieldArgs(args graphql.FieldConfigArgument) FieldOption {
	return func(f *graphql.Field) {
		f.Args = args
	}
}

// FieldDeprecated marks the field deprecated with the given reason.
func FieldDeprecated(reason string) FieldOption {
	return func(f *graphql.Field) {
		f.DeprecationReason = reason
	}
}

// FieldFunc exposes a field on an object. The resolver receives the parent
// value as p.Source and the coerced arguments as p.Args:
//    pet.FieldFunc("birthDate", dateType, func(p graphql.ResolveParams) (interface{}, error) {
//        return p.Source.(*Pet).BirthDate, nil
//    })
//
// Registering the same name twice panics.
func (o *Object) FieldFunc(name string, typ graphql.Output, resolve graphql.FieldResolveFn, opts ...FieldOption) {
	if _, ok := o.fields[name]; ok {
		panic(fmt.Sprintf("duplicate field %s on %s", name, o.Name))
	}
	if typ == nil {
		panic(fmt.Sprintf("field %s on %s has no type", name, o.Name))
	}

	f := &graphql.Field{Name: name, Type: typ, Resolve: resolve}
	for _, opt := range opts {
		opt(f)
	}
	o.fields[name] = f
}

// Type returns the graphql-go object, usable as a field type before all
// fields are registered.
func (o *Object) Type() *graphql.Object {
	return o.gql
}

func (o *Object) empty() bool {
	return len(o.fields) == 0
}

// InputObject represents the input objects passed in queries, mutations and
// subscriptions. Its fields are fixed the first time Type is called.
type InputObject struct {
	Name        string
	Description string

	fields graphql.InputObjectConfigFieldMap
	gql    *graphql.InputObject
}

// Field declares an input field with an optional description.
func (io *InputObject) Field(name string, typ graphql.Input, description ...string) {
	if io.gql != nil {
		panic(fmt.Sprintf("can not register %s on input object %s after it was built", name, io.Name))
	}
	if _, ok := io.fields[name]; ok {
		panic(fmt.Sprintf("duplicate field %s on input object %s", name, io.Name))
	}
	if len(description) > 1 {
		panic("at most one description allowed for Field")
	}

	f := &graphql.InputObjectFieldConfig{Type: typ}
	if len(description) == 1 {
		f.Description = description[0]
	}
	io.fields[name] = f
}

// Type builds the graphql-go input object on first use.
func (io *InputObject) Type() *graphql.InputObject {
	if io.gql == nil {
		io.gql = graphql.NewInputObject(graphql.InputObjectConfig{
			Name:        io.Name,
			Description: io.Description,
			Fields:      io.fields,
		})
	}
	return io.gql
}
