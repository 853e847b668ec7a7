package endpoints

import (
	"github.com/annie-elequin/pawgress/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAuthEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterUsersEndpoints(srv)
	RegisterPetsEndpoints(srv)
	RegisterDogsEndpoints(srv)
	RegisterActivitiesEndpoints(srv)
	RegisterBehaviorsEndpoints(srv)
	RegisterCriteriaEndpoints(srv)
}
