package dto

import (
	"net/http"
	"strings"

	"github.com/ijalalfrz/charter-quote-service/internal/pkg/exception"
)

type OptimizerAircraft struct {
	Tail     string `json:"tail" validate:"required"`
	Position string `json:"position" validate:"required"`
}

type OptimizerLeg struct {
	ID    string `json:"id" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end,omitempty"`
}

type OptimizerRequest struct {
	Aircraft []OptimizerAircraft `json:"aircraft" validate:"unique=Tail,dive"`
	Legs     []OptimizerLeg      `json:"legs" validate:"unique=ID,dive"`
}

func (o *OptimizerRequest) Bind(r *http.Request) error {
	for i := range o.Aircraft {
		o.Aircraft[i].Position = strings.ToUpper(strings.TrimSpace(o.Aircraft[i].Position))
	}

	for i := range o.Legs {
		o.Legs[i].Start = strings.ToUpper(strings.TrimSpace(o.Legs[i].Start))
		o.Legs[i].End = strings.ToUpper(strings.TrimSpace(o.Legs[i].End))
	}

	return o.Validate()
}

func (o *OptimizerRequest) Validate() error {
	if len(o.Aircraft) == 0 || len(o.Legs) == 0 {
		return exception.BadRequest("provide 'aircraft' and 'legs' arrays")
	}

	if err := ValidateSingleError(o); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

// OptimizerResponse maps every tail to the legs it flies. ObjectiveNM is the
// total repositioning distance reported by the solver.
type OptimizerResponse struct {
	Assignment  map[string][]string `json:"assignment"`
	ObjectiveNM float64             `json:"objective_nm"`
}
