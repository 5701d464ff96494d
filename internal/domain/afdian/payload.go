package afdian

import "afdian_adapter/internal/domain/entities"

const CodeSuccess = 200

// RequestEcho is the signed request as sent, and as echoed back by the platform.
type RequestEcho struct {
	UserID string `json:"user_id"`
	Params string `json:"params"`
	TS     int64  `json:"ts"`
	Sign   string `json:"sign"`
}

// Envelope is shared by every platform answer.
type Envelope struct {
	EC *int    `json:"ec" validate:"required"`
	EM *string `json:"em" validate:"required"`
}

func (e Envelope) Code() int {
	if e.EC == nil {
		return 0
	}
	return *e.EC
}

func (e Envelope) Message() string {
	if e.EM == nil {
		return ""
	}
	return *e.EM
}

func (e Envelope) OK() bool {
	return e.Code() == CodeSuccess
}

type PingData struct {
	UID     *string      `json:"uid" validate:"required"`
	Request *RequestEcho `json:"request,omitempty"`
}

type PingResponse struct {
	Envelope
	Data *PingData `json:"data" validate:"required"`
}

type OrderPage struct {
	TotalCount *int             `json:"total_count,omitempty"`
	TotalPage  *int             `json:"total_page,omitempty"`
	List       []entities.Order `json:"list" validate:"required,dive"`
	Request    *RequestEcho     `json:"request,omitempty"`
}

// Find returns the entry whose trade number equals tradeNo. Pages are bounded
// by the API page size, a linear scan is enough.
func (p *OrderPage) Find(tradeNo string) (entities.Order, bool) {
	if p == nil {
		return entities.Order{}, false
	}
	for _, order := range p.List {
		if order.OutTradeNo == tradeNo {
			return order, true
		}
	}
	return entities.Order{}, false
}

type OrderResponse struct {
	Envelope
	Data *OrderPage `json:"data" validate:"required"`
}

type SponsorPage struct {
	TotalCount *int               `json:"total_count,omitempty"`
	TotalPage  *int               `json:"total_page,omitempty"`
	List       []entities.Sponsor `json:"list" validate:"required,dive"`
	Request    *RequestEcho       `json:"request,omitempty"`
}

type SponsorResponse struct {
	Envelope
	Data *SponsorPage `json:"data" validate:"required"`
}

type TimestampExpiredData struct {
	Explain *string `json:"explain" validate:"required"`
}

type TimestampExpiredResponse struct {
	Envelope
	Data *TimestampExpiredData `json:"data" validate:"required"`
}

type KVString struct {
	KVString *string `json:"kv_string" validate:"required"`
}

type WrongData struct {
	Explain *string      `json:"explain" validate:"required"`
	Debug   *KVString    `json:"debug" validate:"required"`
	Request *RequestEcho `json:"request,omitempty"`
}

type WrongResponse struct {
	Envelope
	Data *WrongData `json:"data" validate:"required"`
}

func (r *WrongResponse) Explain() string {
	if r == nil || r.Data == nil || r.Data.Explain == nil {
		return ""
	}
	return *r.Data.Explain
}

func (r *WrongResponse) DebugString() string {
	if r == nil || r.Data == nil || r.Data.Debug == nil || r.Data.Debug.KVString == nil {
		return ""
	}
	return *r.Data.Debug.KVString
}
