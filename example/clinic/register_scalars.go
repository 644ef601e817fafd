package clinic

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
	"github.com/spring-petclinic/petclinic-graphql/types"
)

// RegisterScalars registers the Date scalar used by Pet.birthDate and
// Visit.date. Parse failures of Date variables are reported to logger.
func RegisterScalars(sb *schemabuilder.Schema, logger *zap.Logger) error {
	if err := sb.RegisterScalar(types.NewDateScalar(logger).GraphQLType(), types.DateScalarSpecifiedBy); err != nil {
		return errors.Wrap(err, "registering Date scalar")
	}
	return nil
}
