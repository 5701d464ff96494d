package request

import "strings"

// OrdersQuery selects orders either by page or by trade numbers.
// out_trade_no takes a comma separated list and wins over page.
type OrdersQuery struct {
	Page       int    `form:"page,default=1"`
	OutTradeNo string `form:"out_trade_no"`
}

func (q OrdersQuery) TradeNos() []string {
	if strings.TrimSpace(q.OutTradeNo) == "" {
		return nil
	}
	parts := strings.Split(q.OutTradeNo, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type SponsorsQuery struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=20"`
}
