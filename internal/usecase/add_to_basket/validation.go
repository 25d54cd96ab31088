package add_to_basket

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxSessionLength int) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}

	if req.SessionLength < 1 || req.SessionLength > maxSessionLength {
		return fmt.Errorf("%w: session length must be between 1 and %d", ErrInvalidInput, maxSessionLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
