package common

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer
// access token on authenticated requests.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the access token in the authorization header.
const BearerPrefix = "Bearer "
