package clinic

import (
	"net/http"

	"go.uber.org/zap"

	petclinic "github.com/spring-petclinic/petclinic-graphql"
	"github.com/spring-petclinic/petclinic-graphql/schemabuilder"
)

// GetGraphqlServer builds the pet clinic schema over a seeded Server and
// returns the handler for the /graphql route.
func GetGraphqlServer(logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sb := schemabuilder.NewSchema()
	server := NewServer()

	if err := RegisterSchema(sb, server, logger); err != nil {
		return nil, err
	}

	schema, err := sb.Build()
	if err != nil {
		return nil, err
	}

	return petclinic.HTTPHandler(schema, petclinic.WithLogger(logger)), nil
}
