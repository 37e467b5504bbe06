package domain

// Rate is a raw buy/sell rate against UAH as returned by a bank API.
// Currency is optional; when empty the rate is identified by its position.
type Rate struct {
	Currency string  `json:"currency,omitempty"`
	RateBuy  float64 `json:"rateBuy"`
	RateSell float64 `json:"rateSell"`
}

// Quote is a display-ready buy/sell pair. Empty Buy and Sell mean the rate is unavailable.
type Quote struct {
	Currency string `json:"currency"`
	Buy      string `json:"buy,omitempty"`
	Sell     string `json:"sell,omitempty"`
}

// Available reports whether both rates are present.
func (q Quote) Available() bool {
	return q.Buy != "" && q.Sell != ""
}
