package usecase

// Typed error kinds for the HTTP boundary. Handlers match these with
// errors.As and map them onto status codes: validation, limit and invariant
// violations become 400, not-found becomes 404. Cross-user access is always
// reported as not-found so existence is never revealed to another tenant.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type LimitExceededError struct {
	Message string
}

func (e *LimitExceededError) Error() string { return e.Message }

type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
