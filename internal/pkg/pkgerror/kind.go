package pkgerror

// Kind identifies a catalogued error condition. Its numeric value is the code
// shown to callers as "(Ekk)".
type Kind int

const (
	RequiredParameter       Kind = 1  // 400 - mandatory parameter missing.
	InvalidParameter        Kind = 2  // 400 - parameter present but not valid.
	InvalidCredentials      Kind = 10 // 401 - unknown user or key.
	UnauthorizedUser        Kind = 11 // 403 - client has no access to the service. Not registered.
	UnauthorizedIP          Kind = 12 // 403 - client restricted by origin address.
	UnauthorizedEnvironment Kind = 13 // 403 - credentials used against the wrong environment.
	UnauthorizedProtocol    Kind = 14 // 403 - protocol not allowed.
	UnauthorizedEndpoint    Kind = 15 // 403 - endpoint not allowed for the client.
	ServiceDisabled         Kind = 16 // 403 - service not enabled.
	RateLimitExceeded       Kind = 19 // 429 - concurrency limit exceeded.
	UnprocessableEntity     Kind = 20 // 422 - business rule violation, see NewBusinessError.
	InternalWebError        Kind = 90 // 500 - unhandled failure in the web layer.
	InternalEngineError     Kind = 91 // 500 - unhandled failure in the backend engine.
)

//nolint:gochecknoglobals // fixed list, never mutated
var kinds = []Kind{
	RequiredParameter,
	InvalidParameter,
	InvalidCredentials,
	UnauthorizedUser,
	UnauthorizedIP,
	UnauthorizedEnvironment,
	UnauthorizedProtocol,
	UnauthorizedEndpoint,
	ServiceDisabled,
	RateLimitExceeded,
	UnprocessableEntity,
	InternalWebError,
	InternalEngineError,
}

// Kinds returns every defined kind in ascending code order, including the
// ones without a catalogue entry.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Code returns the numeric code of the kind.
func (k Kind) Code() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case RequiredParameter:
		return "REQUIRED_PARAMETER"
	case InvalidParameter:
		return "INVALID_PARAMETER"
	case InvalidCredentials:
		return "INVALID_CREDENTIALS"
	case UnauthorizedUser:
		return "UNAUTHORIZED_USER"
	case UnauthorizedIP:
		return "UNAUTHORIZED_IP"
	case UnauthorizedEnvironment:
		return "UNAUTHORIZED_ENVIRONMENT"
	case UnauthorizedProtocol:
		return "UNAUTHORIZED_PROTOCOL"
	case UnauthorizedEndpoint:
		return "UNAUTHORIZED_ENDPOINT"
	case ServiceDisabled:
		return "SERVICE_DISABLED"
	case RateLimitExceeded:
		return "RATE_LIMIT_EXCEEDED"
	case UnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case InternalWebError:
		return "INTERNAL_WEB_ERROR"
	case InternalEngineError:
		return "INTERNAL_ENGINE_ERROR"
	default:
		return "KIND_UNKNOWN"
	}
}
