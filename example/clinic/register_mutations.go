package clinic

import (
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	petclinic "github.com/spring-petclinic/petclinic-graphql"
	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
	"github.com/spring-petclinic/petclinic-graphql/types"
)

func inputArg(p graphql.ResolveParams) (map[string]interface{}, error) {
	in, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("input is required")
	}
	return in, nil
}

func dateField(in map[string]interface{}, name string) (types.CalendarDate, error) {
	d, ok := in[name].(types.CalendarDate)
	if !ok {
		return types.CalendarDate{}, errors.Errorf("%s must be a Date", name)
	}
	return d, nil
}

// RegisterMutation registers addVisit and addPet.
func RegisterMutation(sb *schemabuilder.Schema, s *Server) {
	m := sb.Mutation()

	m.FieldFunc("addVisit", graphql.NewNonNull(sb.Object("Visit").Type()), func(p graphql.ResolveParams) (interface{}, error) {
		in, err := inputArg(p)
		if err != nil {
			return nil, err
		}
		date, err := dateField(in, "date")
		if err != nil {
			return nil, err
		}

		v, err := s.AddVisit(in["petId"].(int), date, in["description"].(string))
		if err != nil {
			return nil, err
		}
		petclinic.LoggerFromContext(p.Context).Info("visit added", zap.Int("visitID", v.ID), zap.Stringer("date", v.Date))
		return v, nil
	}, schemabuilder.FieldArgs(graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(sb.InputObject("AddVisitInput").Type())},
	}), schemabuilder.FieldDesc("Records a visit of a pet."))

	m.FieldFunc("addPet", graphql.NewNonNull(sb.Object("Pet").Type()), func(p graphql.ResolveParams) (interface{}, error) {
		in, err := inputArg(p)
		if err != nil {
			return nil, err
		}
		birthDate, err := dateField(in, "birthDate")
		if err != nil {
			return nil, err
		}

		pet, err := s.AddPet(in["ownerId"].(int), in["typeId"].(int), in["name"].(string), birthDate)
		if err != nil {
			return nil, err
		}
		petclinic.LoggerFromContext(p.Context).Info("pet added", zap.Int("petID", pet.ID))
		return pet, nil
	}, schemabuilder.FieldArgs(graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(sb.InputObject("AddPetInput").Type())},
	}), schemabuilder.FieldDesc("Registers a new pet for an owner."))
}
