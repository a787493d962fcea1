// Package api aggregates the endpoint descriptors of every wrapper package.
package api

import (
	"github.com/i2y/acapyclient/pkg/api/actionmenu"
	"github.com/i2y/acapyclient/pkg/api/basicmessage"
	"github.com/i2y/acapyclient/pkg/api/connection"
	"github.com/i2y/acapyclient/pkg/api/credentialdefinition"
	"github.com/i2y/acapyclient/pkg/api/issuecredential"
	"github.com/i2y/acapyclient/pkg/api/schema"
	"github.com/i2y/acapyclient/pkg/api/server"
	"github.com/i2y/acapyclient/pkg/api/trustping"
	"github.com/i2y/acapyclient/pkg/client"
)

// Endpoints returns every endpoint a typed wrapper exists for.
func Endpoints() []client.Endpoint {
	groups := [][]client.Endpoint{
		server.Endpoints,
		connection.Endpoints,
		basicmessage.Endpoints,
		trustping.Endpoints,
		schema.Endpoints,
		credentialdefinition.Endpoints,
		issuecredential.Endpoints,
		actionmenu.Endpoints,
	}
	var all []client.Endpoint
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
