package api

import "time"

// Version is reported in the User-Agent header
const Version = "0.4.0"

// DefaultBaseURL is the hosted authorization service
const DefaultBaseURL = "https://api.walletgate.io/v1"

// DefaultTimeout applies to the default transport only
const DefaultTimeout = 30 * time.Second

// endpoint paths
const (
	pathNonce    = "/auth/nonce"
	pathAuth     = "/auth"
	pathAuthz    = "/authz"
	pathValidate = "/auth/validate"
	pathChains   = "/chains"
)

// headers
const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"
	headerUserAgent     = "User-Agent"

	contentTypeJSON = "application/json"
)

var defaultUserAgent = "walletgate-go/" + Version
