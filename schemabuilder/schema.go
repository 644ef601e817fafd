package schemabuilder

import (
	"net/url"
	"sort"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

const (
	queryName    = "Query"
	mutationName = "Mutation"
)

// Schema is a registry of scalars, objects and input objects that builds into
// a graphql-go schema.
type Schema struct {
	objects      map[string]*Object
	inputObjects map[string]*InputObject
	scalars      map[string]*graphql.Scalar
	specifiedBy  map[string]string
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{
		objects:      map[string]*Object{},
		inputObjects: map[string]*InputObject{},
		scalars:      map[string]*graphql.Scalar{},
		specifiedBy:  map[string]string{},
	}
}

// Query returns the root query object.
func (s *Schema) Query() *Object {
	return s.Object(queryName)
}

// Mutation returns the root mutation object.
func (s *Schema) Mutation() *Object {
	return s.Object(mutationName)
}

// Object returns the object registered under name, creating it on first use.
// The description is taken from the first call only.
func (s *Schema) Object(name string, description ...string) *Object {
	if len(description) > 1 {
		panic("at most one description allowed for Object")
	}

	if o, ok := s.objects[name]; ok {
		return o
	}

	desc := ""
	if len(description) == 1 {
		desc = description[0]
	}
	o := newObject(name, desc)
	s.objects[name] = o
	return o
}

// InputObject returns the input object registered under name, creating it on
// first use.
func (s *Schema) InputObject(name string, description ...string) *InputObject {
	if len(description) > 1 {
		panic("at most one description allowed for InputObject")
	}

	if io, ok := s.inputObjects[name]; ok {
		return io
	}

	io := &InputObject{Name: name, fields: graphql.InputObjectConfigFieldMap{}}
	if len(description) == 1 {
		io.Description = description[0]
	}
	s.inputObjects[name] = io
	return io
}

// RegisterScalar is used to register custom scalars. The scalar is added to the
// schema even if no field refers to it. An optional absolute URL names the
// document that specifies the scalar's behaviour.
//
// For example, the Date scalar of this project is registered as
//    if err := sb.RegisterScalar(types.NewDateScalar(logger).GraphQLType(), types.DateScalarSpecifiedBy); err != nil {
//        return err
//    }
func (s *Schema) RegisterScalar(scalar *graphql.Scalar, specifiedByURL ...string) error {
	if scalar == nil {
		return errors.New("scalar must not be nil")
	}
	if err := scalar.Error(); err != nil {
		return errors.Wrapf(err, "invalid scalar %s", scalar.Name())
	}
	if len(specifiedByURL) > 1 {
		return errors.Errorf("at most one specifiedBy URL allowed for scalar %s", scalar.Name())
	}

	name := scalar.Name()
	if _, ok := s.scalars[name]; ok {
		return errors.Errorf("duplicate scalar %s", name)
	}

	if len(specifiedByURL) == 1 {
		u, err := url.Parse(specifiedByURL[0])
		if err != nil {
			return errors.Wrapf(err, "specifiedBy URL of scalar %s", name)
		}
		if !u.IsAbs() || u.Host == "" {
			return errors.Errorf("specifiedBy URL of scalar %s must be absolute: %q", name, specifiedByURL[0])
		}
		s.specifiedBy[name] = u.String()
	}
	s.scalars[name] = scalar
	return nil
}

// SpecifiedByURL returns the URL the scalar registered under name was
// registered with, or "" if there is none.
func (s *Schema) SpecifiedByURL(name string) string {
	return s.specifiedBy[name]
}

// Scalar returns the scalar registered under name, or nil.
func (s *Schema) Scalar(name string) *graphql.Scalar {
	return s.scalars[name]
}

// Build validates the registrations and builds the executable schema.
func (s *Schema) Build() (graphql.Schema, error) {
	query, ok := s.objects[queryName]
	if !ok || query.empty() {
		return graphql.Schema{}, errors.New("query must have at least one field")
	}

	for name := range s.scalars {
		if _, ok := s.objects[name]; ok {
			return graphql.Schema{}, errors.Errorf("%s is registered as both scalar and object", name)
		}
		if _, ok := s.inputObjects[name]; ok {
			return graphql.Schema{}, errors.Errorf("%s is registered as both scalar and input object", name)
		}
	}
	for name := range s.inputObjects {
		if _, ok := s.objects[name]; ok {
			return graphql.Schema{}, errors.Errorf("%s is registered as both object and input object", name)
		}
	}

	config := graphql.SchemaConfig{Query: query.Type()}
	if mutation, ok := s.objects[mutationName]; ok && !mutation.empty() {
		config.Mutation = mutation.Type()
	}

	for _, name := range sortedKeys(s.scalars) {
		config.Types = append(config.Types, s.scalars[name])
	}
	for _, name := range sortedKeys(s.objects) {
		o := s.objects[name]
		if name == queryName || name == mutationName {
			continue
		}
		if o.empty() {
			return graphql.Schema{}, errors.Errorf("object %s has no fields", name)
		}
		config.Types = append(config.Types, o.Type())
	}
	for _, name := range sortedKeys(s.inputObjects) {
		io := s.inputObjects[name]
		if len(io.fields) == 0 {
			return graphql.Schema{}, errors.Errorf("input object %s has no fields", name)
		}
		config.Types = append(config.Types, io.Type())
	}

	schema, err := graphql.NewSchema(config)
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "building schema")
	}
	return schema, nil
}

// MustBuild builds a schema and panics if an error occurs.
func (s *Schema) MustBuild() graphql.Schema {
	built, err := s.Build()
	if err != nil {
		panic(err)
	}
	return built
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
