package main

import (
	"github.com/jessevdk/go-flags"
)

// Options configures the example server. Every flag can also be set through
// the environment.
type Options struct {
	Addr       string `long:"addr" description:"address to listen on" env:"PETCLINIC_ADDR" default:":8080"`
	Endpoint   string `long:"endpoint" description:"path of the GraphQL endpoint" env:"PETCLINIC_ENDPOINT" default:"/graphql"`
	Playground bool   `long:"playground" description:"serve the GraphiQL playground on /" env:"PETCLINIC_PLAYGROUND"`
	Debug      bool   `long:"debug" description:"enable debug logging" env:"PETCLINIC_DEBUG"`
}

func parseOptions(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}
