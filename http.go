package petclinic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HandlerFunc executes a GraphQL request.
type HandlerFunc func(ctx context.Context, params graphql.Params) *graphql.Result

// MiddlewareFunc wraps a HandlerFunc, e.g. to log or authorize requests.
type MiddlewareFunc func(HandlerFunc) HandlerFunc

type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	Middlewares []MiddlewareFunc
	Logger      *zap.Logger
}

// WithMiddlewares installs middlewares; the first one given runs outermost.
func WithMiddlewares(m ...MiddlewareFunc) HandlerOption {
	return func(o *handlerOptions) {
		o.Middlewares = append(o.Middlewares, m...)
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(l *zap.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = l
	}
}

// HTTPHandler implements the handler required for executing the graphql queries and mutations
func HTTPHandler(schema graphql.Schema, opts ...HandlerOption) http.Handler {
	o := handlerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	h := &httpHandler{
		schema: schema,
		logger: o.Logger,
	}

	prev := h.execute
	for i := range o.Middlewares {
		prev = o.Middlewares[len(o.Middlewares)-1-i](prev)
	}
	h.exec = prev

	return h
}

type httpHandler struct {
	schema graphql.Schema
	logger *zap.Logger

	exec HandlerFunc
}

type httpPostBody struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type httpResponse struct {
	Data   interface{}                `json:"data"`
	Errors []gqlerrors.FormattedError `json:"errors"`
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := h.logger.With(zap.String("requestID", requestID))
	ctx := withLogger(withRequestID(r.Context(), requestID), logger)

	writeResponse := func(response httpResponse) {
		responseJSON, err := json.Marshal(response)
		if err != nil {
			logger.Error("encoding response", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		_, _ = w.Write(responseJSON)
	}
	writeError := func(err error) {
		logger.Info("rejected request", zap.Error(err))
		writeResponse(httpResponse{Errors: []gqlerrors.FormattedError{gqlerrors.FormatError(err)}})
	}

	if r.Method != http.MethodPost {
		writeError(errors.New("request must be a POST"))
		return
	}

	if r.Body == nil || r.Body == http.NoBody {
		writeError(errors.New("request must include a query"))
		return
	}

	var params httpPostBody
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(errors.Wrap(err, "decoding request"))
		return
	}
	if params.Query == "" {
		writeError(errors.New("must have a single query"))
		return
	}

	ctx = addVariables(ctx, params.Variables)

	start := time.Now()
	result := h.exec(ctx, graphql.Params{
		Schema:         h.schema,
		RequestString:  params.Query,
		VariableValues: params.Variables,
		OperationName:  params.OperationName,
		Context:        ctx,
	})
	logger.Debug("executed query",
		zap.String("operation", params.OperationName),
		zap.Duration("took", time.Since(start)),
		zap.Int("errors", len(result.Errors)),
	)

	writeResponse(httpResponse{Data: result.Data, Errors: result.Errors})
}

func (h *httpHandler) execute(ctx context.Context, params graphql.Params) *graphql.Result {
	return graphql.Do(params)
}

type contextKey int

const (
	graphqlVariableKey contextKey = iota
	requestIDKey
	loggerKey
)

// ExtractVariables is used to returns the variables received as part of the graphql request.
// This is intended to be used from within the interceptors.
func ExtractVariables(ctx context.Context) map[string]interface{} {
	if v, ok := ctx.Value(graphqlVariableKey).(map[string]interface{}); ok {
		return v
	}

	return nil
}

func addVariables(ctx context.Context, v map[string]interface{}) context.Context {
	return context.WithValue(ctx, graphqlVariableKey, v)
}

// RequestID returns the ID assigned to the request being served, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// LoggerFromContext returns the request scoped logger, or a no-op logger
// outside of a request.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// playgroundHTML is a simple HTML page that loads GraphiQL from CDN
// to provide an interactive GraphQL playground. It is used by
// PlaygroundHandler.
const playgroundHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8" />
    <title>%s</title>
    <style>
        body {
            height: 100%%;
            margin: 0;
            overflow: hidden;
        }
        #graphiql {
            height: 100vh;
        }
    </style>
    <link rel="stylesheet" href="https://unpkg.com/graphiql@1.4.0/graphiql.min.css" />
    <script src="https://unpkg.com/react@16.14.0/umd/react.production.min.js"></script>
    <script src="https://unpkg.com/react-dom@16.14.0/umd/react-dom.production.min.js"></script>
    <script src="https://unpkg.com/graphiql@1.4.0/graphiql.min.js"></script>
</head>
<body>
    <div id="graphiql">Loading...</div>
    <script>
      function graphQLFetcher(graphQLParams) {
        return fetch(
          '%s',
          {
            method: 'post',
            headers: {
              Accept: 'application/json',
              'Content-Type': 'application/json',
            },
            body: JSON.stringify(graphQLParams),
            credentials: 'omit',
          },
        ).then(function (response) {
          return response.json().catch(function () {
            return response.text();
          });
        });
      }

      ReactDOM.render(
        React.createElement(GraphiQL, {
          fetcher: graphQLFetcher,
        }),
        document.getElementById('graphiql'),
      );
    </script>
</body>
</html>`

// PlaygroundHandler returns an HTTP handler that serves an interactive
// GraphiQL playground posting to graphqlEndpoint, typically "/graphql":
//   http.Handle("/graphql", petclinic.HTTPHandler(schema))
//   http.Handle("/", petclinic.PlaygroundHandler("Petclinic", "/graphql"))
func PlaygroundHandler(title, graphqlEndpoint string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = fmt.Fprintf(w, playgroundHTML, title, graphqlEndpoint)
	})
}
