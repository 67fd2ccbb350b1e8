package common

const (
	KEY_STRATEGY_LIST       = "iconomi:strategies:%s"
	KEY_STRATEGY_STATISTICS = "iconomi:statistics:%s:%s"
	KEY_STRATEGY_PRICE      = "iconomi:price:%s:%s"
	KEY_RANKING_REPORT      = "ranking:report"
)

const (
	USER_AGENT = "iconomi-ranker/1.0"
)
