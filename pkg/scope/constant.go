package scope

import "time"

// TokenExpirationDuration is the lifetime of issued access tokens.
const TokenExpirationDuration = 30 * time.Minute
