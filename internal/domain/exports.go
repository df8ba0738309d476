package domain

import (
	interfaces "bitkitcore/internal/domain/interfaces"
	types "bitkitcore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Tag                     = types.Tag
	HashingKey              = types.HashingKey
	LightningAddressInvoice = types.LightningAddressInvoice
	ChannelRequestParams    = types.ChannelRequestParams
	WithdrawCallbackParams  = types.WithdrawCallbackParams
	LnurlAuthParams         = types.LnurlAuthParams
	PayResponse             = types.PayResponse
	WithdrawResponse        = types.WithdrawResponse
	ChannelResponse         = types.ChannelResponse
	Response                = types.Response
	InvoiceResponse         = types.InvoiceResponse
	StatusResponse          = types.StatusResponse
	LoginRecord             = types.LoginRecord
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Transport       = interfaces.Transport
	KeyStore        = interfaces.KeyStore
	LoginStore      = interfaces.LoginStore
	PayService      = interfaces.PayService
	AuthService     = interfaces.AuthService
	WithdrawService = interfaces.WithdrawService
	ChannelService  = interfaces.ChannelService
)

// Re-exported constants.
const (
	TagPayRequest      = types.TagPayRequest
	TagWithdrawRequest = types.TagWithdrawRequest
	TagChannelRequest  = types.TagChannelRequest
	TagLogin           = types.TagLogin
	StatusOK           = types.StatusOK
	StatusError        = types.StatusError
)
