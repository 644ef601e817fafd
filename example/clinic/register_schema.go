package clinic

import (
	"go.uber.org/zap"

	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
)

// RegisterSchema orchestrates all registrations. Scalars go first since
// objects and inputs refer to them.
func RegisterSchema(sb *schemabuilder.Schema, s *Server, logger *zap.Logger) error {
	if err := RegisterScalars(sb, logger); err != nil {
		return err
	}
	RegisterObjects(sb, s)
	RegisterInputs(sb)

	RegisterQuery(sb, s)
	RegisterMutation(sb, s)
	return nil
}
