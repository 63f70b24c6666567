package pricing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
)

var ErrUnknownAirport = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "unknown ICAO code",
}

var ErrUnknownAircraftModel = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "unknown jet model",
}

var ErrRunwayInfeasible = errors.New("runway infeasible")

// RunwayInfeasibleError carries the derated runway requirement and the
// shortest runway of the two fields.
type RunwayInfeasibleError struct {
	Model       string
	RequiredFt  int
	AvailableFt int
}

func (e RunwayInfeasibleError) Error() string {
	return fmt.Sprintf("%s requires ~%d ft at current temps/DA; shortest runway is %d ft.",
		e.Model, e.RequiredFt, e.AvailableFt)
}

func (e RunwayInfeasibleError) Unwrap() error {
	return ErrRunwayInfeasible
}

func newRunwayInfeasibleError(model string, required, available int) exception.ApplicationError {
	cause := RunwayInfeasibleError{
		Model:       model,
		RequiredFt:  required,
		AvailableFt: available,
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    cause.Error(),
		Cause:      cause,
	}
}
