package googlespeech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/travelmate-app/backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToBCP47(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"ko", "ko-KR"},
		{"en", "en-US"},
		{"ja", "ja-JP"},
		{"pt-BR", "pt-BR"}, // regional tags pass through
		{"xx", "xx"},
	}
	for _, tc := range cases {
		if got := toBCP47(tc.in); got != tc.want {
			t.Errorf("toBCP47(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSTT_Recognize_Success(t *testing.T) {
	t.Parallel()

	audio := []byte("fake-audio-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req recognizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Config.LanguageCode != "ko-KR" {
			t.Errorf("languageCode = %q, want ko-KR", req.Config.LanguageCode)
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Audio.Content)
		if err != nil || string(decoded) != string(audio) {
			t.Errorf("audio content not round-tripped")
		}

		w.Write([]byte(`{"results":[{"alternatives":[{"transcript":"안녕하세요","confidence":0.95}]}]}`))
	}))
	defer srv.Close()

	p := NewSTTWithURL(srv.URL, "test-key", newTestLogger())

	got, err := p.Recognize(context.Background(), audio, "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "안녕하세요" {
		t.Errorf("Text = %q, want %q", got.Text, "안녕하세요")
	}
	if got.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", got.Confidence)
	}
}

func TestSTT_Recognize_NoTranscription(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	p := NewSTTWithURL(srv.URL, "test-key", newTestLogger())

	_, err := p.Recognize(context.Background(), []byte("noise"), "ko")
	if !errors.Is(err, domain.ErrInvalidAudio) {
		t.Errorf("expected ErrInvalidAudio, got: %v", err)
	}
}

func TestSTT_Recognize_BadRequest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewSTTWithURL(srv.URL, "test-key", newTestLogger())

	_, err := p.Recognize(context.Background(), []byte("not-audio"), "ko")
	if !errors.Is(err, domain.ErrInvalidAudio) {
		t.Errorf("expected ErrInvalidAudio on 400, got: %v", err)
	}
}

func TestSTT_Recognize_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewSTTWithURL(srv.URL, "test-key", newTestLogger())

	_, err := p.Recognize(context.Background(), []byte("audio"), "ko")
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("expected ErrExternalService on 500, got: %v", err)
	}
}

func TestTTS_Synthesize_Success(t *testing.T) {
	t.Parallel()

	audio := make([]byte, 4000) // 4000 bytes at 32 kbps = 1000 ms

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Voice.LanguageCode != "ko-KR" {
			t.Errorf("languageCode = %q, want ko-KR", req.Voice.LanguageCode)
		}
		if req.Voice.Name != "ko-KR-Standard-A" {
			t.Errorf("voice name = %q, want ko-KR-Standard-A", req.Voice.Name)
		}
		if req.AudioConfig.AudioEncoding != "MP3" {
			t.Errorf("audioEncoding = %q, want MP3", req.AudioConfig.AudioEncoding)
		}

		resp := synthesizeResponse{AudioContent: base64.StdEncoding.EncodeToString(audio)}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := NewTTSWithURL(srv.URL, "test-key", "ko-KR-Standard-A", newTestLogger())

	got, err := p.Synthesize(context.Background(), "안녕하세요", "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Audio) != len(audio) {
		t.Errorf("audio length = %d, want %d", len(got.Audio), len(audio))
	}
	if got.DurationMS != 1000 {
		t.Errorf("DurationMS = %d, want 1000", got.DurationMS)
	}
}

func TestTTS_Synthesize_VoiceMismatchFallsBack(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		// Korean voice must not be forced onto an English synthesis.
		if req.Voice.Name != "" {
			t.Errorf("expected no voice name for mismatched language, got %q", req.Voice.Name)
		}
		if req.Voice.LanguageCode != "en-US" {
			t.Errorf("languageCode = %q, want en-US", req.Voice.LanguageCode)
		}

		resp := synthesizeResponse{AudioContent: base64.StdEncoding.EncodeToString([]byte("mp3"))}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := NewTTSWithURL(srv.URL, "test-key", "ko-KR-Standard-A", newTestLogger())

	if _, err := p.Synthesize(context.Background(), "Hello", "en"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTTS_Synthesize_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewTTSWithURL(srv.URL, "test-key", "ko-KR-Standard-A", newTestLogger())

	_, err := p.Synthesize(context.Background(), "Hello", "en")
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("expected ErrExternalService, got: %v", err)
	}
}
