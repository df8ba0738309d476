package types

import (
	"encoding/json"
	"strings"
)

// PayResponse is the first-step reply of an LNURL-pay service (LUD-06).
// Amounts are in millisatoshis.
type PayResponse struct {
	Tag            Tag    `json:"tag"`
	Callback       string `json:"callback"`
	MinSendable    uint64 `json:"minSendable"`
	MaxSendable    uint64 `json:"maxSendable"`
	Metadata       string `json:"metadata"`
	CommentAllowed int    `json:"commentAllowed,omitempty"`
}

// WithdrawResponse is the first-step reply of an LNURL-withdraw service (LUD-03).
type WithdrawResponse struct {
	Tag                Tag    `json:"tag"`
	Callback           string `json:"callback"`
	K1                 string `json:"k1"`
	DefaultDescription string `json:"defaultDescription"`
	MinWithdrawable    uint64 `json:"minWithdrawable"`
	MaxWithdrawable    uint64 `json:"maxWithdrawable"`
}

// ChannelResponse is the first-step reply of an LNURL-channel service (LUD-02).
type ChannelResponse struct {
	Tag      Tag    `json:"tag"`
	URI      string `json:"uri"`
	Callback string `json:"callback"`
	K1       string `json:"k1"`
}

// Response is a decoded first-step reply. Exactly one of the pointers
// matching Tag is set.
type Response struct {
	Tag      Tag
	Pay      *PayResponse
	Withdraw *WithdrawResponse
	Channel  *ChannelResponse
}

// InvoiceResponse is returned by a pay callback.
type InvoiceResponse struct {
	PR            string            `json:"pr"`
	Routes        []json.RawMessage `json:"routes"`
	SuccessAction json.RawMessage   `json:"successAction,omitempty"`
}

// StatusResponse is the generic {"status": ..., "reason": ...} reply.
type StatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// OK reports whether the service accepted the request.
func (s StatusResponse) OK() bool { return strings.EqualFold(s.Status, StatusOK) }

// Failed reports whether the service explicitly rejected the request.
func (s StatusResponse) Failed() bool { return strings.EqualFold(s.Status, StatusError) }
