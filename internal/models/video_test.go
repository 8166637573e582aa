package models

import (
	"encoding/json"
	"testing"
)

func TestPaymentStatusCanonicalDecoding(t *testing.T) {
	cases := map[string]PaymentStatus{
		"done":     PaymentPaid,
		"paid":     PaymentPaid,
		"request":  PaymentPending,
		"pending":  PaymentPending,
		"reject":   PaymentRejected,
		"overdue":  PaymentRejected,
		"rejected": PaymentRejected,
	}
	for wire, want := range cases {
		var s PaymentStatus
		if err := json.Unmarshal([]byte(`"`+wire+`"`), &s); err != nil {
			t.Fatalf("unmarshal %q: %v", wire, err)
		}
		if s != want {
			t.Fatalf("wire %q: expected %s, got %s", wire, want, s)
		}
	}
}

func TestPaymentStatusUnknownPassthrough(t *testing.T) {
	var s PaymentStatus
	if err := json.Unmarshal([]byte(`"weird"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != PaymentStatus("weird") {
		t.Fatalf("expected passthrough, got %s", s)
	}
	if s.Valid() {
		t.Fatal("unknown value must not be valid")
	}
}

func TestPaymentStatusUpstreamValue(t *testing.T) {
	cases := map[PaymentStatus]string{
		PaymentPaid:     "done",
		PaymentPending:  "request",
		PaymentRejected: "reject",
	}
	for status, want := range cases {
		if got := status.UpstreamValue(); got != want {
			t.Fatalf("%s: expected %s, got %s", status, want, got)
		}
	}
}

func TestFlagDecoding(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true,
		"0": false, "false": false, "null": false,
	}
	for wire, want := range cases {
		var f Flag
		if err := json.Unmarshal([]byte(wire), &f); err != nil {
			t.Fatalf("unmarshal %q: %v", wire, err)
		}
		if f.Bool() != want {
			t.Fatalf("wire %q: expected %v", wire, want)
		}
	}

	var f Flag
	if err := json.Unmarshal([]byte(`"yes"`), &f); err == nil {
		t.Fatal("expected error for non-flag value")
	}
}

func TestFlagEncodesToDigits(t *testing.T) {
	data, err := json.Marshal(struct {
		Sent Flag `json:"is_already_sent"`
	}{Sent: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"is_already_sent":1}` {
		t.Fatalf("expected 0/1 encoding, got %s", data)
	}
}

func TestMailStateDerivation(t *testing.T) {
	cases := []struct {
		sent, approved Flag
		want           MailState
	}{
		{false, false, MailNotSent},
		{false, true, MailNotSent},
		{true, false, MailSentForApproval},
		{true, true, MailApproved},
	}
	for _, tc := range cases {
		v := Video{IsAlreadySent: tc.sent, MailApproval: tc.approved}
		if got := v.MailState(); got != tc.want {
			t.Fatalf("sent=%v approved=%v: expected %s, got %s", tc.sent, tc.approved, tc.want, got)
		}
	}
}

func TestAllowedPlacements(t *testing.T) {
	yt := AllowedPlacements(PlatformYoutube)
	if len(yt) != 3 {
		t.Fatalf("expected 3 youtube placements, got %v", yt)
	}
	for _, p := range yt {
		if p == PlacementBio || p == PlacementStory {
			t.Fatalf("instagram placement %s offered on youtube", p.Label())
		}
	}

	ig := AllowedPlacements(PlatformInstagram)
	if len(ig) != 2 {
		t.Fatalf("expected 2 instagram placements, got %v", ig)
	}

	if AllowedPlacements("tiktok") != nil {
		t.Fatal("unknown platform has no placements")
	}
}

func TestVideoDecodesWireShape(t *testing.T) {
	raw := `{
		"video_id": "v1",
		"profile_url": "https://youtube.com/@asha",
		"video_url": "https://youtu.be/abc",
		"campaign_id": "c1",
		"campaign_name": "Summer Launch",
		"brand": "Acme",
		"video_status": "live",
		"payment_status": "request",
		"platform": "youtube",
		"deliverables": {"videos": 1, "posts": 2, "promotionalLink": [1, 3]},
		"mail_aproval": 0,
		"is_already_sent": 1
	}`

	var v Video
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.PaymentStatus != PaymentPending {
		t.Fatalf("expected pending, got %s", v.PaymentStatus)
	}
	if v.MailState() != MailSentForApproval {
		t.Fatalf("expected sent_for_approval, got %s", v.MailState())
	}
	if len(v.Deliverables.PromotionalLinks) != 2 || v.Deliverables.PromotionalLinks[1] != PlacementPinnedComment {
		t.Fatalf("unexpected deliverables: %+v", v.Deliverables)
	}
}

func TestUserStatusField(t *testing.T) {
	active := User{IsSuspended: false}
	if active.Field("status") != "active" {
		t.Fatalf("expected active, got %v", active.Field("status"))
	}
	suspended := User{IsSuspended: true}
	if suspended.Field("status") != "terminated" {
		t.Fatalf("expected terminated, got %v", suspended.Field("status"))
	}
}
