package afdian

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindPing             Kind = "ping"
	KindOrder            Kind = "order"
	KindSponsor          Kind = "sponsor"
	KindTimestampExpired Kind = "timestamp_expired"
	KindWrong            Kind = "wrong"
)

// Classified is a platform answer decoded into exactly one known shape.
// Kind tells which pointer is set.
type Classified struct {
	Kind             Kind
	Envelope         Envelope
	Ping             *PingResponse
	Order            *OrderResponse
	Sponsor          *SponsorResponse
	TimestampExpired *TimestampExpiredResponse
	Wrong            *WrongResponse
}

func (c Classified) Code() int {
	return c.Envelope.Code()
}

func (c Classified) Message() string {
	return c.Envelope.Message()
}

// Explain returns the platform explanation carried by error shaped answers.
func (c Classified) Explain() string {
	switch c.Kind {
	case KindWrong:
		return c.Wrong.Explain()
	case KindTimestampExpired:
		if c.TimestampExpired.Data.Explain != nil {
			return *c.TimestampExpired.Data.Explain
		}
	}
	return ""
}

type shape struct {
	kind Kind
	try  func(body []byte) (Classified, error)
}

// ResponseClassifier picks the payload shape of an answer. The platform sends
// no discriminator, so shapes are tried in a fixed order and the first one
// whose required fields validate wins. Some bodies satisfy more than one
// shape, the order below is load-bearing.
type ResponseClassifier struct {
	validate *validator.Validate
	shapes   []shape
}

func NewResponseClassifier() *ResponseClassifier {
	c := &ResponseClassifier{validate: validator.New()}
	c.shapes = []shape{
		{KindPing, func(body []byte) (Classified, error) {
			r, err := decodeShape[PingResponse](c.validate, body)
			if err != nil {
				return Classified{}, err
			}
			return Classified{Kind: KindPing, Envelope: r.Envelope, Ping: r}, nil
		}},
		{KindOrder, func(body []byte) (Classified, error) {
			r, err := decodeShape[OrderResponse](c.validate, body)
			if err != nil {
				return Classified{}, err
			}
			return Classified{Kind: KindOrder, Envelope: r.Envelope, Order: r}, nil
		}},
		{KindSponsor, func(body []byte) (Classified, error) {
			r, err := decodeShape[SponsorResponse](c.validate, body)
			if err != nil {
				return Classified{}, err
			}
			return Classified{Kind: KindSponsor, Envelope: r.Envelope, Sponsor: r}, nil
		}},
		{KindTimestampExpired, func(body []byte) (Classified, error) {
			r, err := decodeShape[TimestampExpiredResponse](c.validate, body)
			if err != nil {
				return Classified{}, err
			}
			return Classified{Kind: KindTimestampExpired, Envelope: r.Envelope, TimestampExpired: r}, nil
		}},
		{KindWrong, func(body []byte) (Classified, error) {
			r, err := decodeShape[WrongResponse](c.validate, body)
			if err != nil {
				return Classified{}, err
			}
			return Classified{Kind: KindWrong, Envelope: r.Envelope, Wrong: r}, nil
		}},
	}
	return c
}

var defaultClassifier = NewResponseClassifier()

// Classify runs the default classifier.
func Classify(body []byte) (Classified, error) {
	return defaultClassifier.Classify(body)
}

// Classify returns the first shape matching body, or a *ParseError.
// A match says nothing about business success: check Code() as well.
func (c *ResponseClassifier) Classify(body []byte) (Classified, error) {
	if err := precheck(body); err != nil {
		return Classified{}, err
	}
	var attempts []error
	for _, s := range c.shapes {
		result, err := s.try(body)
		if err == nil {
			return result, nil
		}
		attempts = append(attempts, fmt.Errorf("%s: %w", s.kind, err))
	}
	return Classified{}, &ParseError{
		Reason: ParseNoShapeMatch,
		Body:   body,
		Cause:  errors.Join(attempts...),
	}
}

// ClassifyAs decodes body into one given shape only. Callers use it to get
// richer diagnostics out of a body that an earlier shape already matched.
func (c *ResponseClassifier) ClassifyAs(body []byte, kind Kind) (Classified, error) {
	if err := precheck(body); err != nil {
		return Classified{}, err
	}
	for _, s := range c.shapes {
		if s.kind != kind {
			continue
		}
		result, err := s.try(body)
		if err != nil {
			return Classified{}, &ParseError{Reason: ParseShapeMismatch, Body: body, Cause: err}
		}
		return result, nil
	}
	return Classified{}, &ParseError{
		Reason: ParseShapeMismatch,
		Body:   body,
		Cause:  fmt.Errorf("unknown shape %q", kind),
	}
}

func precheck(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &ParseError{Reason: ParseEmptyBody, Body: body}
	}
	if !json.Valid(trimmed) {
		return &ParseError{Reason: ParseNotJSON, Body: body}
	}
	if trimmed[0] != '{' {
		return &ParseError{Reason: ParseNotObject, Body: body}
	}
	return nil
}

func decodeShape[T any](validate *validator.Validate, body []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if err := validate.Struct(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
