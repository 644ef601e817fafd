package clinic

import (
	"github.com/graphql-go/graphql"

	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
	"github.com/spring-petclinic/petclinic-graphql/types"
)

// RegisterInputs registers the mutation inputs. Their Date fields only accept
// variables; inline date literals fail validation. A malformed Date variable
// fails the whole request with a variable error instead of arriving as null,
// since graphql-go rejects a variable whose coercion yields nil.
func RegisterInputs(sb *schemabuilder.Schema) {
	date := sb.Scalar(types.DateScalarName)

	visit := sb.InputObject("AddVisitInput", "Input for recording a visit.")
	visit.Field("petId", graphql.NewNonNull(graphql.Int), "The visited pet.")
	visit.Field("date", graphql.NewNonNull(date), "Day of the visit, yyyy/MM/dd.")
	visit.Field("description", graphql.NewNonNull(graphql.String))

	pet := sb.InputObject("AddPetInput", "Input for registering a pet.")
	pet.Field("ownerId", graphql.NewNonNull(graphql.Int))
	pet.Field("typeId", graphql.NewNonNull(graphql.Int))
	pet.Field("name", graphql.NewNonNull(graphql.String))
	pet.Field("birthDate", graphql.NewNonNull(date), "Day of birth, yyyy/MM/dd.")
}
