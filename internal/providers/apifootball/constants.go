package apifootball

import "time"

const providerName = "apifootball"

const (
	defaultBaseURL     = "https://apiv3.apifootball.com"
	defaultHTTPTimeout = 10 * time.Second

	actionEvents = "get_events"

	placeholderLogo = "/img/team-placeholder.png"
)
