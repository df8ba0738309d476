package lnurl

import (
	"encoding/json"
	"fmt"

	"bitkitcore/internal/domain"
)

// DecodeResponse decodes a first-step LNURL reply, dispatching on its tag.
// A {"status":"ERROR"} reply is returned as *domain.ServiceError.
func DecodeResponse(body []byte) (domain.Response, error) {
	var probe struct {
		Tag domain.Tag `json:"tag"`
		domain.StatusResponse
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return domain.Response{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	if probe.Failed() {
		return domain.Response{}, &domain.ServiceError{Reason: probe.Reason}
	}

	out := domain.Response{Tag: probe.Tag}
	switch probe.Tag {
	case domain.TagPayRequest:
		var p domain.PayResponse
		if err := json.Unmarshal(body, &p); err != nil {
			return domain.Response{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
		}
		if p.MinSendable > p.MaxSendable {
			return domain.Response{}, fmt.Errorf("%w: minSendable %d > maxSendable %d",
				domain.ErrInvalidResponse, p.MinSendable, p.MaxSendable)
		}
		if err := requireCallback(p.Callback); err != nil {
			return domain.Response{}, err
		}
		out.Pay = &p
	case domain.TagWithdrawRequest:
		var w domain.WithdrawResponse
		if err := json.Unmarshal(body, &w); err != nil {
			return domain.Response{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
		}
		if w.MinWithdrawable > w.MaxWithdrawable {
			return domain.Response{}, fmt.Errorf("%w: minWithdrawable %d > maxWithdrawable %d",
				domain.ErrInvalidResponse, w.MinWithdrawable, w.MaxWithdrawable)
		}
		if err := requireCallback(w.Callback); err != nil {
			return domain.Response{}, err
		}
		out.Withdraw = &w
	case domain.TagChannelRequest:
		var c domain.ChannelResponse
		if err := json.Unmarshal(body, &c); err != nil {
			return domain.Response{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
		}
		if err := requireCallback(c.Callback); err != nil {
			return domain.Response{}, err
		}
		out.Channel = &c
	default:
		return domain.Response{}, fmt.Errorf("%w: unsupported tag %q", domain.ErrInvalidResponse, probe.Tag)
	}
	return out, nil
}

func requireCallback(cb string) error {
	if _, err := parseHTTPURL(cb); err != nil {
		return fmt.Errorf("%w: bad callback %q", domain.ErrInvalidResponse, cb)
	}
	return nil
}
