package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteToken = RouteAuth + "/token"

	// users
	RouteUsers          = RouteApiV1 + "/users"
	RouteUser           = RouteUsers + "/:user_id"
	RouteUserProfile    = RouteUser + "/profile"
	RouteUserActivate   = RouteUser + "/activate"
	RouteUserDeactivate = RouteUser + "/deactivate"
	RouteUserRestore    = RouteUser + "/restore"
	RouteUserHardDelete = RouteUser + "/hard"

	// addresses
	RouteAddresses       = RouteApiV1 + "/addresses"
	RouteAddress         = RouteAddresses + "/:address_id"
	RouteAddressesNearby = RouteAddresses + "/nearby"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
