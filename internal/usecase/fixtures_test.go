package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
)

var (
	tokenCred = entities.BotCredential{UserID: "user_id1", Token: "token1"}
	hookCred  = entities.BotCredential{UserID: "hook_user"}
)

const (
	wrongBody = `{"ec":400005,"em":"sign validation failed","data":{"explain":"sign mismatch, check token","debug":{"kv_string":"params{\"out_trade_no\":\"X1\"}ts1700000000user_iduser_id1"}}}`
	pingBody  = `{"ec":200,"em":"","data":{"uid":"uid-1","request":{"user_id":"user_id1","params":"{\"a\":333}","ts":1700000000,"sign":"x"}}}`
)

func orderJSON(tradeNo string) string {
	return fmt.Sprintf(`{"out_trade_no":%q,"custom_order_id":"","user_id":"sponsor1","user_private_id":"priv1","plan_id":"plan1","title":"","month":1,"total_amount":"5.00","show_amount":"5.00","status":2,"remark":"","redeem_id":"","product_type":0,"discount":"0.00","sku_detail":[]}`, tradeNo)
}

func orderListBody(tradeNos ...string) []byte {
	items := make([]string, 0, len(tradeNos))
	for _, no := range tradeNos {
		items = append(items, orderJSON(no))
	}
	return []byte(fmt.Sprintf(`{"ec":200,"em":"ok","data":{"list":[%s],"total_count":%d,"total_page":1}}`, strings.Join(items, ","), len(items)))
}

func notifyBody(tradeNo string) []byte {
	return []byte(fmt.Sprintf(`{"ec":200,"em":"ok","data":{"type":"order","order":%s}}`, orderJSON(tradeNo)))
}

func okResponse(body []byte) afdian.RawResponse {
	return afdian.RawResponse{StatusCode: 200, Body: body}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}
