// Package docs Station Booking Service API.
//
// Backend for booking train tickets between stations.
// Manages the reference data of a rail network (stations, routes,
// trains and their types, crews) and the journeys scheduled on it,
// and lets authenticated users book seats on those journeys.
//
// Main features:
// - CRUD for stations, routes, trains, train types, crews and journeys
// - Journey search by source, destination and departure date
// - Seat availability computed per journey
// - Atomic multi-ticket orders with per-seat conflict detection
// - JWT authentication with refresh token rotation
//
//	Schemes: http, https
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_token:
//
//	SecurityDefinitions:
//	bearer_token:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
