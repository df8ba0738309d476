package lnurl_test

import (
	"errors"
	"testing"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
)

func TestDecodeResponse_Pay(t *testing.T) {
	body := `{"tag":"payRequest","callback":"https://pay.example.com/cb","minSendable":1000,
		"maxSendable":100000000,"metadata":"[[\"text/plain\",\"hi\"]]","commentAllowed":140}`
	resp, err := lnurl.DecodeResponse([]byte(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Tag != domain.TagPayRequest || resp.Pay == nil {
		t.Fatalf("expected pay response, got %+v", resp)
	}
	if resp.Pay.MinSendable != 1000 || resp.Pay.MaxSendable != 100000000 || resp.Pay.CommentAllowed != 140 {
		t.Fatalf("unexpected pay response %+v", resp.Pay)
	}
	if resp.Withdraw != nil || resp.Channel != nil {
		t.Fatal("only the pay variant should be set")
	}
}

func TestDecodeResponse_WithdrawAndChannel(t *testing.T) {
	w, err := lnurl.DecodeResponse([]byte(`{"tag":"withdrawRequest","callback":"https://w.example.com/cb",
		"k1":"abc","defaultDescription":"gift","minWithdrawable":1000,"maxWithdrawable":5000}`))
	if err != nil {
		t.Fatalf("decode withdraw: %v", err)
	}
	if w.Withdraw == nil || w.Withdraw.K1 != "abc" || w.Withdraw.MaxWithdrawable != 5000 {
		t.Fatalf("unexpected withdraw response %+v", w)
	}

	c, err := lnurl.DecodeResponse([]byte(`{"tag":"channelRequest","uri":"02aa@1.2.3.4:9735",
		"callback":"https://c.example.com/cb","k1":"def"}`))
	if err != nil {
		t.Fatalf("decode channel: %v", err)
	}
	if c.Channel == nil || c.Channel.URI != "02aa@1.2.3.4:9735" {
		t.Fatalf("unexpected channel response %+v", c)
	}
}

func TestDecodeResponse_ServiceError(t *testing.T) {
	_, err := lnurl.DecodeResponse([]byte(`{"status":"ERROR","reason":"user not found"}`))
	var se *domain.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("want ServiceError, got %v", err)
	}
	if se.Reason != "user not found" {
		t.Fatalf("unexpected reason %q", se.Reason)
	}
}

func TestDecodeResponse_Invalid(t *testing.T) {
	for _, body := range []string{
		`not json`,
		`{"tag":"somethingElse"}`,
		`{"tag":"payRequest","callback":"https://x.com/cb","minSendable":10,"maxSendable":1}`,
		`{"tag":"payRequest","callback":"nope","minSendable":1,"maxSendable":10}`,
		`{"tag":"withdrawRequest","callback":"https://x.com/cb","minWithdrawable":10,"maxWithdrawable":1}`,
	} {
		_, err := lnurl.DecodeResponse([]byte(body))
		if !errors.Is(err, domain.ErrInvalidResponse) {
			t.Fatalf("decode %s: want ErrInvalidResponse, got %v", body, err)
		}
	}
}
