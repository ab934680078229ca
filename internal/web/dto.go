package web

import (
	"errors"

	"github.com/goserg/elocalc/internal/elo"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrMissingRatingA = errors.New("ratingA is required")
	ErrMissingRatingB = errors.New("ratingB is required")
	ErrMissingOutcome = errors.New("outcome is required")
	ErrMissingPoints  = errors.New("pointsA and pointsB are required")
)

type outcomeRequest struct {
	RatingA *float64     `json:"ratingA"`
	RatingB *float64     `json:"ratingB"`
	Outcome *elo.Outcome `json:"outcome"`
}

func (r outcomeRequest) Validate() error {
	var err error
	if r.RatingA == nil {
		err = errors.Join(err, ErrMissingRatingA)
	}
	if r.RatingB == nil {
		err = errors.Join(err, ErrMissingRatingB)
	}
	if r.Outcome == nil {
		err = errors.Join(err, ErrMissingOutcome)
	}
	return err
}

// pointsRequest without outcome lets the calculator derive it from points.
type pointsRequest struct {
	RatingA *float64     `json:"ratingA"`
	RatingB *float64     `json:"ratingB"`
	PointsA *float64     `json:"pointsA"`
	PointsB *float64     `json:"pointsB"`
	Method  *elo.Method  `json:"method,omitempty"`
	Outcome *elo.Outcome `json:"outcome,omitempty"`
}

func (r pointsRequest) Validate() error {
	var err error
	if r.RatingA == nil {
		err = errors.Join(err, ErrMissingRatingA)
	}
	if r.RatingB == nil {
		err = errors.Join(err, ErrMissingRatingB)
	}
	if r.PointsA == nil || r.PointsB == nil {
		err = errors.Join(err, ErrMissingPoints)
	}
	return err
}

func (r pointsRequest) options(defaultMethod elo.Method) []elo.PointsOption {
	method := defaultMethod
	if r.Method != nil {
		method = *r.Method
	}
	opts := []elo.PointsOption{elo.WithMethod(method)}
	if r.Outcome != nil {
		opts = append(opts, elo.WithOutcome(*r.Outcome))
	}
	return opts
}

type ratingResponse struct {
	RatingA float64 `json:"ratingA"`
	RatingB float64 `json:"ratingB"`
	DeltaA  float64 `json:"deltaA"`
	DeltaB  float64 `json:"deltaB"`
}

func newRatingResponse(oldA, oldB, newA, newB float64) ratingResponse {
	return ratingResponse{
		RatingA: newA,
		RatingB: newB,
		DeltaA:  newA - oldA,
		DeltaB:  newB - oldB,
	}
}

type paramsResponse struct {
	elo.Params
	Method elo.Method        `json:"method"`
	Routes map[string]string `json:"routes"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func newErrorResponse(err error) errorResponse {
	var resp errorResponse
	for _, err := range unwrap(err) {
		resp.Errors = append(resp.Errors, err.Error())
	}
	return resp
}
