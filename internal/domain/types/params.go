package types

// LightningAddressInvoice is an invoice obtained for a Lightning Address.
type LightningAddressInvoice struct {
	Address        string `json:"address"`
	AmountSatoshis uint64 `json:"amount_satoshis"`
	Invoice        string `json:"invoice"`
}

// ChannelRequestParams are the inputs of an LNURL-channel callback (LUD-02).
type ChannelRequestParams struct {
	K1          string `validate:"required"`
	Callback    string `validate:"required"`
	LocalNodeID string `validate:"required"`
	IsPrivate   bool
	Cancel      bool
}

// WithdrawCallbackParams are the inputs of an LNURL-withdraw callback (LUD-03).
type WithdrawCallbackParams struct {
	K1             string `validate:"required"`
	Callback       string `validate:"required"`
	PaymentRequest string `validate:"required"`
}

// LnurlAuthParams are the inputs of an LNURL-auth login (LUD-04).
type LnurlAuthParams struct {
	Domain     string
	K1         string
	Callback   string
	HashingKey HashingKey
}
