package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashwini/config"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

func newTestSender(serverURL string) *TwilioSender {
	return &TwilioSender{
		accountSID: "ACtest",
		authToken:  "token",
		from:       "+15005550006",
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestSendSMSSuccess(t *testing.T) {
	var gotTo, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTo = r.PostForm.Get("To")
		gotBody = r.PostForm.Get("Body")
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "ACtest", user)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer srv.Close()

	sender := newTestSender(srv.URL)
	err := sender.SendSMS(context.Background(), "+919963643062", "hello")
	require.NoError(t, err)
	assert.Equal(t, "+919963643062", gotTo)
	assert.Equal(t, "hello", gotBody)
}

func TestSendSMSClientErrorNoRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number","status":400}`))
	}))
	defer srv.Close()

	sender := newTestSender(srv.URL)
	err := sender.SendSMS(context.Background(), "bogus", "hello")
	var sendErr *SendError
	require.ErrorAs(t, err, &sendErr)
	assert.Contains(t, err.Error(), "21211")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSendSMSRetriesServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM456"}`))
	}))
	defer srv.Close()

	sender := newTestSender(srv.URL)
	err := sender.SendSMS(context.Background(), "+919963643062", "hello")
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestSendSMSMissingCredentials(t *testing.T) {
	sender := &TwilioSender{httpClient: &http.Client{}}
	err := sender.SendSMS(context.Background(), "+919963643062", "hello")
	var sendErr *SendError
	assert.ErrorAs(t, err, &sendErr)
}

func TestSendSMSEmptyBody(t *testing.T) {
	sender := newTestSender("http://localhost:0")
	err := sender.SendSMS(context.Background(), "+919963643062", "  ")
	var sendErr *SendError
	assert.ErrorAs(t, err, &sendErr)
}

func TestNormalizeNumber(t *testing.T) {
	code := config.AppConfig.SMSCountryCode
	assert.Equal(t, code+"9963643062", NormalizeNumber("9963643062"))
	assert.Equal(t, "+919963643062", NormalizeNumber("+919963643062"))
	assert.Equal(t, code+"9963643062", NormalizeNumber(" 9963643062 "))
	assert.Equal(t, "", NormalizeNumber(""))
}

func TestBookingConfirmationBody(t *testing.T) {
	body := BookingConfirmationBody("OP-07", "30 minutes")
	assert.Contains(t, body, config.AppConfig.ClinicName)
	assert.Contains(t, body, "OP Number: OP-07")
	assert.Contains(t, body, "Doctor ETA: 30 minutes")
	assert.Contains(t, body, config.AppConfig.TrackURL)
}
