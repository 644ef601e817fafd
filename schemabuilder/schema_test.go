package schemabuilder_test

import (
	"encoding/json"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
	"github.com/spring-petclinic/petclinic-graphql/types"
)

func requireData(t *testing.T, expected string, result *graphql.Result) {
	t.Helper()
	out, err := json.Marshal(result.Data)
	require.NoError(t, err)
	require.JSONEq(t, expected, string(out))
}

func TestBuildRequiresQuery(t *testing.T) {
	_, err := schemabuilder.NewSchema().Build()
	require.Error(t, err)
}

func TestMirrorQuery(t *testing.T) {
	sb := schemabuilder.NewSchema()
	sb.Query().FieldFunc("mirror", graphql.Int, func(p graphql.ResolveParams) (interface{}, error) {
		return p.Args["value"].(int) * -1, nil
	}, schemabuilder.FieldArgs(graphql.FieldConfigArgument{
		"value": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}), schemabuilder.FieldDesc("Negates value."))

	schema := sb.MustBuild()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  `query Mirror($value: Int!) { mirror(value: $value) }`,
		VariableValues: map[string]interface{}{"value": 1},
	})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	requireData(t, `{"mirror":-1}`, result)

	field := schema.QueryType().Fields()["mirror"]
	require.Equal(t, "Negates value.", field.Description)
}

func TestDuplicateFieldPanics(t *testing.T) {
	sb := schemabuilder.NewSchema()
	resolve := func(p graphql.ResolveParams) (interface{}, error) { return "x", nil }
	sb.Query().FieldFunc("x", graphql.String, resolve)
	require.Panics(t, func() {
		sb.Query().FieldFunc("x", graphql.String, resolve)
	})
}

func TestRegisterScalar(t *testing.T) {
	sb := schemabuilder.NewSchema()
	date := types.NewDateScalar(nil).GraphQLType()

	require.NoError(t, sb.RegisterScalar(date))
	require.Error(t, sb.RegisterScalar(date))
	require.Error(t, sb.RegisterScalar(nil))
	require.Same(t, date, sb.Scalar(types.DateScalarName))
	require.Nil(t, sb.Scalar("Missing"))

	sb.Query().FieldFunc("ping", graphql.String, func(p graphql.ResolveParams) (interface{}, error) {
		return "pong", nil
	})
	schema, err := sb.Build()
	require.NoError(t, err)

	// Unreferenced scalars are still part of the schema.
	require.Equal(t, date, schema.Type(types.DateScalarName))
}

func TestRegisterScalarSpecifiedBy(t *testing.T) {
	sb := schemabuilder.NewSchema()
	date := types.NewDateScalar(nil).GraphQLType()

	require.NoError(t, sb.RegisterScalar(date, types.DateScalarSpecifiedBy))
	require.Equal(t, types.DateScalarSpecifiedBy, sb.SpecifiedByURL(types.DateScalarName))
	require.Same(t, date, sb.Scalar(types.DateScalarName))

	other := graphql.NewScalar(graphql.ScalarConfig{
		Name:      "Plain",
		Serialize: func(v interface{}) interface{} { return v },
	})
	require.NoError(t, sb.RegisterScalar(other))
	require.Empty(t, sb.SpecifiedByURL("Plain"))
	require.Empty(t, sb.SpecifiedByURL("Missing"))

	for _, tc := range []struct {
		name string
		urls []string
	}{
		{"Relative", []string{"docs/relative.html"}},
		{"NoHost", []string{"mailto:someone"}},
		{"Malformed", []string{"http://[::1"}},
		{"Two", []string{"https://a.example/x", "https://b.example/y"}},
	} {
		scalar := graphql.NewScalar(graphql.ScalarConfig{
			Name:      tc.name,
			Serialize: func(v interface{}) interface{} { return v },
		})
		require.Error(t, sb.RegisterScalar(scalar, tc.urls...), tc.name)
		require.Nil(t, sb.Scalar(tc.name), tc.name)
		require.Empty(t, sb.SpecifiedByURL(tc.name), tc.name)
	}
}

func TestMutuallyReferencingObjects(t *testing.T) {
	type owner struct{ name string }
	type pet struct {
		name  string
		owner *owner
	}
	o := &owner{name: "George"}
	p := &pet{name: "Leo", owner: o}

	sb := schemabuilder.NewSchema()
	ownerObj := sb.Object("Owner")
	petObj := sb.Object("Pet", "A pet.")

	ownerObj.FieldFunc("name", graphql.String, func(rp graphql.ResolveParams) (interface{}, error) {
		return rp.Source.(*owner).name, nil
	})
	ownerObj.FieldFunc("pet", petObj.Type(), func(rp graphql.ResolveParams) (interface{}, error) {
		return p, nil
	})
	petObj.FieldFunc("name", graphql.String, func(rp graphql.ResolveParams) (interface{}, error) {
		return rp.Source.(*pet).name, nil
	})
	petObj.FieldFunc("owner", ownerObj.Type(), func(rp graphql.ResolveParams) (interface{}, error) {
		return rp.Source.(*pet).owner, nil
	})
	sb.Query().FieldFunc("pet", petObj.Type(), func(rp graphql.ResolveParams) (interface{}, error) {
		return p, nil
	})

	result := graphql.Do(graphql.Params{
		Schema:        sb.MustBuild(),
		RequestString: `{ pet { name owner { name pet { name } } } }`,
	})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	requireData(t, `{"pet":{"name":"Leo","owner":{"name":"George","pet":{"name":"Leo"}}}}`, result)
}

func TestInputObject(t *testing.T) {
	sb := schemabuilder.NewSchema()
	in := sb.InputObject("EchoInput", "Echo input.")
	in.Field("text", graphql.NewNonNull(graphql.String), "Text to echo.")
	require.Panics(t, func() { in.Field("text", graphql.String) })

	sb.Query().FieldFunc("echo", graphql.String, func(p graphql.ResolveParams) (interface{}, error) {
		return p.Args["input"].(map[string]interface{})["text"], nil
	}, schemabuilder.FieldArgs(graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(in.Type())},
	}))

	require.Panics(t, func() { in.Field("late", graphql.String) })

	result := graphql.Do(graphql.Params{
		Schema:         sb.MustBuild(),
		RequestString:  `query Echo($in: EchoInput!) { echo(input: $in) }`,
		VariableValues: map[string]interface{}{"in": map[string]interface{}{"text": "hi"}},
	})
	require.False(t, result.HasErrors(), "%v", result.Errors)
	requireData(t, `{"echo":"hi"}`, result)
}

func TestNameClash(t *testing.T) {
	sb := schemabuilder.NewSchema()
	require.NoError(t, sb.RegisterScalar(types.NewDateScalar(nil).GraphQLType()))
	sb.Object(types.DateScalarName).FieldFunc("x", graphql.String, nil)
	sb.Query().FieldFunc("x", graphql.String, nil)

	_, err := sb.Build()
	require.Error(t, err)
}
