package app

import "bitkitcore/internal/domain"

// App is the set of LNURL operations commands run against.
type App struct {
	Pay      domain.PayService
	Auth     domain.AuthService
	Withdraw domain.WithdrawService
	Channel  domain.ChannelService
}

func New(pay domain.PayService, auth domain.AuthService, withdraw domain.WithdrawService, channel domain.ChannelService) *App {
	return &App{
		Pay:      pay,
		Auth:     auth,
		Withdraw: withdraw,
		Channel:  channel,
	}
}
