package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"
)

// recordingAPI captures the calls the video service makes
type recordingAPI struct {
	videos     []models.Video
	lastPath   string
	lastMethod string
	lastBody   map[string]any
}

func (a *recordingAPI) serve(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.lastPath = r.URL.Path
		a.lastMethod = r.Method
		a.lastBody = nil
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				a.lastBody = body
			}
		}

		if r.URL.Path == "/videos" && r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(a.videos)
			return
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))
}

func testVideos() []models.Video {
	return []models.Video{
		{
			ID:            "v1",
			Platform:      models.PlatformYoutube,
			IsAlreadySent: false,
			MailApproval:  false,
		},
		{
			ID:            "v2",
			Platform:      models.PlatformInstagram,
			IsAlreadySent: true,
			MailApproval:  false,
		},
		{
			ID:            "v3",
			Platform:      models.PlatformYoutube,
			IsAlreadySent: true,
			MailApproval:  true,
		},
	}
}

func newVideoFixture(t *testing.T) (*VideoService, *recordingAPI, func()) {
	t.Helper()
	api := &recordingAPI{videos: testVideos()}
	srv := api.serve(t)
	service := NewVideoService(upstream.NewClient(srv.URL, time.Second))
	return service, api, srv.Close
}

func TestGetFindsVideoInCollection(t *testing.T) {
	service, _, done := newVideoFixture(t)
	defer done()

	video, err := service.Get(context.Background(), "tok", "v2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if video.ID != "v2" {
		t.Fatalf("expected v2, got %s", video.ID)
	}

	if _, err := service.Get(context.Background(), "tok", "missing"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestSendConfirmationBlocksResend(t *testing.T) {
	service, _, done := newVideoFixture(t)
	defer done()

	sent, err := service.Get(context.Background(), "tok", "v2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	err = service.SendConfirmation(context.Background(), "tok", sent, &models.SendConfirmationRequest{Videos: 1})
	if !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("expected ErrAlreadySent, got %v", err)
	}
}

func TestSendConfirmationValidatesPlacements(t *testing.T) {
	service, api, done := newVideoFixture(t)
	defer done()

	youtube, err := service.Get(context.Background(), "tok", "v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Bio is an Instagram placement; a YouTube video cannot carry it
	err = service.SendConfirmation(context.Background(), "tok", youtube, &models.SendConfirmationRequest{
		Videos:           1,
		PromotionalLinks: []models.Placement{models.PlacementBio},
	})
	if err == nil {
		t.Fatal("expected placement rejection")
	}

	// A valid YouTube placement goes through
	err = service.SendConfirmation(context.Background(), "tok", youtube, &models.SendConfirmationRequest{
		Videos:           1,
		Posts:            2,
		PromotionalLinks: []models.Placement{models.PlacementDescription, models.PlacementPinnedComment},
	})
	if err != nil {
		t.Fatalf("SendConfirmation: %v", err)
	}
	if api.lastPath != "/campaigns/confirmsent" {
		t.Fatalf("unexpected path %s", api.lastPath)
	}
	if api.lastBody["video_id"] != "v1" {
		t.Fatalf("unexpected body %v", api.lastBody)
	}
}

func TestSendConfirmationRejectsNegativeCounts(t *testing.T) {
	service, _, done := newVideoFixture(t)
	defer done()

	video, err := service.Get(context.Background(), "tok", "v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	err = service.SendConfirmation(context.Background(), "tok", video, &models.SendConfirmationRequest{Videos: -1})
	if err == nil {
		t.Fatal("expected rejection of negative count")
	}
}

func TestConfirmSentStateMachine(t *testing.T) {
	service, api, done := newVideoFixture(t)
	defer done()

	notSent, _ := service.Get(context.Background(), "tok", "v1")
	if err := service.ConfirmSent(context.Background(), "tok", notSent); !errors.Is(err, ErrNotSent) {
		t.Fatalf("expected ErrNotSent, got %v", err)
	}

	approved, _ := service.Get(context.Background(), "tok", "v3")
	if err := service.ConfirmSent(context.Background(), "tok", approved); !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved, got %v", err)
	}

	pending, _ := service.Get(context.Background(), "tok", "v2")
	if err := service.ConfirmSent(context.Background(), "tok", pending); err != nil {
		t.Fatalf("ConfirmSent: %v", err)
	}
	if api.lastPath != "/campaigns/confirmsent/approve" {
		t.Fatalf("unexpected path %s", api.lastPath)
	}
}

func TestUpdatePaymentTranslatesStatus(t *testing.T) {
	service, api, done := newVideoFixture(t)
	defer done()

	if err := service.UpdatePayment(context.Background(), "tok", "v1", models.PaymentPaid); err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if api.lastPath != "/videos/payment/update" {
		t.Fatalf("unexpected path %s", api.lastPath)
	}
	if api.lastBody["payment_status"] != "done" {
		t.Fatalf("expected wire value done, got %v", api.lastBody["payment_status"])
	}

	if err := service.UpdatePayment(context.Background(), "tok", "v1", "overdue"); err == nil {
		t.Fatal("non-canonical status must be rejected before reaching the API")
	}
}

func TestCreateValidatesStatuses(t *testing.T) {
	service, _, done := newVideoFixture(t)
	defer done()

	err := service.Create(context.Background(), "tok", &models.VideoRequest{VideoStatus: "published"})
	if err == nil {
		t.Fatal("expected invalid video status rejection")
	}

	err = service.Create(context.Background(), "tok", &models.VideoRequest{
		VideoStatus:   models.VideoLive,
		PaymentStatus: models.PaymentPending,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}
