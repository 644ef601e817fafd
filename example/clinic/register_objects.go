package clinic

import (
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"

	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
	"github.com/spring-petclinic/petclinic-graphql/types"
)

// source adapts a typed field getter to a graphql-go resolver.
func source[T any](f func(*T) (interface{}, error)) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		v, ok := p.Source.(*T)
		if !ok {
			return nil, errors.Errorf("unexpected source %T", p.Source)
		}
		return f(v)
	}
}

// RegisterObjects registers the output objects. Scalars must be registered
// first.
func RegisterObjects(sb *schemabuilder.Schema, s *Server) {
	date := sb.Scalar(types.DateScalarName)

	owner := sb.Object("Owner", "A pet owner.")
	pet := sb.Object("Pet", "A pet treated at the clinic.")
	petType := sb.Object("PetType", "The kind of a pet.")
	visit := sb.Object("Visit", "A visit of a pet at the clinic.")
	vet := sb.Object("Vet", "A veterinarian.")
	specialty := sb.Object("Specialty", "A field a vet is trained in.")

	owner.FieldFunc("id", graphql.NewNonNull(graphql.Int), source(func(o *Owner) (interface{}, error) { return o.ID, nil }))
	owner.FieldFunc("firstName", graphql.NewNonNull(graphql.String), source(func(o *Owner) (interface{}, error) { return o.FirstName, nil }))
	owner.FieldFunc("lastName", graphql.NewNonNull(graphql.String), source(func(o *Owner) (interface{}, error) { return o.LastName, nil }))
	owner.FieldFunc("address", graphql.NewNonNull(graphql.String), source(func(o *Owner) (interface{}, error) { return o.Address, nil }))
	owner.FieldFunc("city", graphql.NewNonNull(graphql.String), source(func(o *Owner) (interface{}, error) { return o.City, nil }))
	owner.FieldFunc("telephone", graphql.NewNonNull(graphql.String), source(func(o *Owner) (interface{}, error) { return o.Telephone, nil }))
	owner.FieldFunc("pets", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(pet.Type()))), source(func(o *Owner) (interface{}, error) {
		return s.PetsOf(o.ID), nil
	}))

	pet.FieldFunc("id", graphql.NewNonNull(graphql.Int), source(func(p *Pet) (interface{}, error) { return p.ID, nil }))
	pet.FieldFunc("name", graphql.NewNonNull(graphql.String), source(func(p *Pet) (interface{}, error) { return p.Name, nil }))
	pet.FieldFunc("birthDate", graphql.NewNonNull(date), source(func(p *Pet) (interface{}, error) { return p.BirthDate, nil }))
	pet.FieldFunc("type", graphql.NewNonNull(petType.Type()), source(func(p *Pet) (interface{}, error) { return s.PetType(p.TypeID) }))
	pet.FieldFunc("owner", graphql.NewNonNull(owner.Type()), source(func(p *Pet) (interface{}, error) { return s.Owner(p.OwnerID) }))
	pet.FieldFunc("visits", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(visit.Type()))), source(func(p *Pet) (interface{}, error) {
		return s.VisitsOf(p.ID), nil
	}))

	petType.FieldFunc("id", graphql.NewNonNull(graphql.Int), source(func(t *PetType) (interface{}, error) { return t.ID, nil }))
	petType.FieldFunc("name", graphql.NewNonNull(graphql.String), source(func(t *PetType) (interface{}, error) { return t.Name, nil }))

	visit.FieldFunc("id", graphql.NewNonNull(graphql.Int), source(func(v *Visit) (interface{}, error) { return v.ID, nil }))
	visit.FieldFunc("date", graphql.NewNonNull(date), source(func(v *Visit) (interface{}, error) { return v.Date, nil }))
	visit.FieldFunc("description", graphql.NewNonNull(graphql.String), source(func(v *Visit) (interface{}, error) { return v.Description, nil }))
	visit.FieldFunc("pet", graphql.NewNonNull(pet.Type()), source(func(v *Visit) (interface{}, error) { return s.Pet(v.PetID) }))

	vet.FieldFunc("id", graphql.NewNonNull(graphql.Int), source(func(v *Vet) (interface{}, error) { return v.ID, nil }))
	vet.FieldFunc("firstName", graphql.NewNonNull(graphql.String), source(func(v *Vet) (interface{}, error) { return v.FirstName, nil }))
	vet.FieldFunc("lastName", graphql.NewNonNull(graphql.String), source(func(v *Vet) (interface{}, error) { return v.LastName, nil }))
	vet.FieldFunc("specialties", graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(specialty.Type()))), source(func(v *Vet) (interface{}, error) {
		return v.Specialties, nil
	}))

	specialty.FieldFunc("id", graphql.NewNonNull(graphql.Int), source(func(sp *Specialty) (interface{}, error) { return sp.ID, nil }))
	specialty.FieldFunc("name", graphql.NewNonNull(graphql.String), source(func(sp *Specialty) (interface{}, error) { return sp.Name, nil }))
}
