package clinic

import (
	"github.com/graphql-go/graphql"

	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
)

var idArgs = graphql.FieldConfigArgument{
	"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
}

// RegisterQuery registers the query fields.
func RegisterQuery(sb *schemabuilder.Schema, s *Server) {
	q := sb.Query()

	q.FieldFunc("owners", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(sb.Object("Owner").Type()))),
		func(p graphql.ResolveParams) (interface{}, error) {
			return s.Owners(), nil
		}, schemabuilder.FieldDesc("Returns all owners."))

	q.FieldFunc("owner", sb.Object("Owner").Type(), func(p graphql.ResolveParams) (interface{}, error) {
		return s.Owner(p.Args["id"].(int))
	}, schemabuilder.FieldArgs(idArgs), schemabuilder.FieldDesc("Fetch owner by ID."))

	q.FieldFunc("pets", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(sb.Object("Pet").Type()))),
		func(p graphql.ResolveParams) (interface{}, error) {
			return s.Pets(), nil
		}, schemabuilder.FieldDesc("Returns all pets."))

	q.FieldFunc("pet", sb.Object("Pet").Type(), func(p graphql.ResolveParams) (interface{}, error) {
		return s.Pet(p.Args["id"].(int))
	}, schemabuilder.FieldArgs(idArgs), schemabuilder.FieldDesc("Fetch pet by ID."))

	q.FieldFunc("pettypes", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(sb.Object("PetType").Type()))),
		func(p graphql.ResolveParams) (interface{}, error) {
			return s.PetTypes(), nil
		}, schemabuilder.FieldDesc("Returns all pet types."))

	q.FieldFunc("vets", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(sb.Object("Vet").Type()))),
		func(p graphql.ResolveParams) (interface{}, error) {
			return s.Vets(), nil
		}, schemabuilder.FieldDesc("Returns all vets."))
}
