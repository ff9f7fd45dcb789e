package errors

var (
	// Domain errors — used in usecase/repository
	ErrEmailTaken         = AlreadyExists("email is already registered")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidCredentials = Unauthorized("invalid email or password")
	ErrInvalidName        = InvalidArg("name cannot be empty")
	ErrInvalidEmail       = InvalidArg("a valid email address is required")
	ErrInvalidPassword    = InvalidArg("password must be at least 6 characters")
	ErrInvalidCoordinates = InvalidArg("latitude must be in [-90,90] and longitude in [-180,180]")
	ErrNotAuthenticated   = Unauthorized("not authenticated")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrLoginFailed(cause error) error {
	return Wrap(CodeUnauthenticated, "login failed", cause)
}
