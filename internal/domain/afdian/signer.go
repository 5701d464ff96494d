package afdian

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"afdian_adapter/internal/domain/entities"
)

const (
	EndpointPing         = "ping"
	EndpointQueryOrder   = "query-order"
	EndpointQuerySponsor = "query-sponsor"

	APIPathPrefix = "/api/open/"
)

var supportedEndpoints = map[string]struct{}{
	EndpointPing:         {},
	EndpointQueryOrder:   {},
	EndpointQuerySponsor: {},
}

// NormalizeEndpoint accepts either "query-order" or "/api/open/query-order"
// and fails for anything outside the open API whitelist.
func NormalizeEndpoint(endpoint string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(endpoint), APIPathPrefix)
	name = strings.Trim(name, "/")
	if _, ok := supportedEndpoints[name]; !ok {
		return "", &APINotAvailableError{Endpoint: endpoint}
	}
	return name, nil
}

// Sign computes the open API signature:
// md5(token + "params" + params + "ts" + ts + "user_id" + userID), lowercase hex.
// The token order is fixed by the platform.
func Sign(token, userID string, ts int64, params string) string {
	var b strings.Builder
	b.WriteString(token)
	b.WriteString("params")
	b.WriteString(params)
	b.WriteString("ts")
	b.WriteString(strconv.FormatInt(ts, 10))
	b.WriteString("user_id")
	b.WriteString(userID)
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// EncodeParams serializes params with sorted keys. The result is both signed
// and sent, so it must never be re-encoded in between.
func EncodeParams(params map[string]any) (string, error) {
	if len(params) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SignedRequest is one signed open API call. Build it with NewSignedRequest
// and do not mutate it afterwards.
type SignedRequest struct {
	Method   string
	URL      string
	Endpoint string
	UserID   string
	TS       int64
	Params   string
	Sign     string
}

func NewSignedRequest(
	method string,
	apiBase string,
	endpoint string,
	cred entities.BotCredential,
	params map[string]any,
	now time.Time,
) (SignedRequest, error) {
	name, err := NormalizeEndpoint(endpoint)
	if err != nil {
		return SignedRequest{}, err
	}
	if !cred.HasToken() {
		return SignedRequest{}, ErrMissingToken
	}
	encoded, err := EncodeParams(params)
	if err != nil {
		return SignedRequest{}, &ParseError{Reason: ParseNotJSON, Cause: err}
	}

	method = strings.ToUpper(strings.TrimSpace(method))
	if method != http.MethodGet {
		method = http.MethodPost
	}
	ts := now.Unix()
	return SignedRequest{
		Method:   method,
		URL:      strings.TrimRight(apiBase, "/") + APIPathPrefix + name,
		Endpoint: name,
		UserID:   cred.UserID,
		TS:       ts,
		Params:   encoded,
		Sign:     Sign(cred.Token, cred.UserID, ts, encoded),
	}, nil
}

// Payload is the JSON body of a POST call.
func (r SignedRequest) Payload() RequestEcho {
	return RequestEcho{
		UserID: r.UserID,
		Params: r.Params,
		TS:     r.TS,
		Sign:   r.Sign,
	}
}

// Query carries the same fields for GET calls.
func (r SignedRequest) Query() url.Values {
	q := url.Values{}
	q.Set("user_id", r.UserID)
	q.Set("params", r.Params)
	q.Set("ts", strconv.FormatInt(r.TS, 10))
	q.Set("sign", r.Sign)
	return q
}

// RawResponse is an unclassified platform answer.
type RawResponse struct {
	StatusCode int
	Body       []byte
}
