package translation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/backend/internal/config"
	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/internal/provider"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockTranslationRepo struct {
	CreateFunc  func(ctx context.Context, t *domain.Translation) (*domain.Translation, error)
	GetByIDFunc func(ctx context.Context, profileID, translationID uuid.UUID) (*domain.Translation, error)
	ListFunc    func(ctx context.Context, profileID uuid.UUID, filter domain.TranslationFilter, limit, offset int) ([]*domain.Translation, int, error)
	DeleteFunc  func(ctx context.Context, profileID, translationID uuid.UUID) error

	created []*domain.Translation
}

func (m *mockTranslationRepo) Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	m.created = append(m.created, t)
	return t, nil
}

func (m *mockTranslationRepo) GetByID(ctx context.Context, profileID, translationID uuid.UUID) (*domain.Translation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID, translationID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockTranslationRepo) List(ctx context.Context, profileID uuid.UUID, filter domain.TranslationFilter, limit, offset int) ([]*domain.Translation, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, profileID, filter, limit, offset)
	}
	return []*domain.Translation{}, 0, nil
}

func (m *mockTranslationRepo) Delete(ctx context.Context, profileID, translationID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID, translationID)
	}
	return nil
}

type mockThreadRepo struct {
	GetByIDFunc func(ctx context.Context, profileID, threadID uuid.UUID) (*domain.Thread, error)
}

func (m *mockThreadRepo) GetByID(ctx context.Context, profileID, threadID uuid.UUID) (*domain.Thread, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID, threadID)
	}
	return nil, domain.ErrNotFound
}

type mockCatalog struct {
	BuildTranslationContextFunc func(ctx context.Context, primary, sub, lang string) (string, error)
}

func (m *mockCatalog) BuildTranslationContext(ctx context.Context, primary, sub, lang string) (string, error) {
	if m.BuildTranslationContextFunc != nil {
		return m.BuildTranslationContextFunc(ctx, primary, sub, lang)
	}
	return "", nil
}

type mockTranslator struct {
	TranslateFunc func(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	calls         int
}

func (m *mockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.calls++
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, sourceLang, targetLang)
	}
	return "translated: " + text, nil
}

type mockCtxTranslator struct {
	TranslateWithContextFunc func(ctx context.Context, text, sourceLang, targetLang, situationContext string) (string, error)
	calls                    int
	lastSituation            string
}

func (m *mockCtxTranslator) TranslateWithContext(ctx context.Context, text, sourceLang, targetLang, situationContext string) (string, error) {
	m.calls++
	m.lastSituation = situationContext
	if m.TranslateWithContextFunc != nil {
		return m.TranslateWithContextFunc(ctx, text, sourceLang, targetLang, situationContext)
	}
	return "ctx-translated: " + text, nil
}

type mockSTT struct {
	RecognizeFunc func(ctx context.Context, audio []byte, lang string) (*provider.SpeechResult, error)
}

func (m *mockSTT) Recognize(ctx context.Context, audio []byte, lang string) (*provider.SpeechResult, error) {
	if m.RecognizeFunc != nil {
		return m.RecognizeFunc(ctx, audio, lang)
	}
	return &provider.SpeechResult{Text: "안녕하세요", Confidence: 0.95}, nil
}

type mockTTS struct {
	SynthesizeFunc func(ctx context.Context, text, lang string) (*provider.SynthesisResult, error)
}

func (m *mockTTS) Synthesize(ctx context.Context, text, lang string) (*provider.SynthesisResult, error) {
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text, lang)
	}
	return &provider.SynthesisResult{Audio: []byte("mp3"), DurationMS: 1500}, nil
}

type mockStorage struct {
	UploadFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	lastKey    string
	lastType   string
}

func (m *mockStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.lastKey = key
	m.lastType = contentType
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, data, contentType)
	}
	return "https://storage.example.com/" + key, nil
}

// ===========================================================================
// Harness
// ===========================================================================

type deps struct {
	records       *mockTranslationRepo
	threads       *mockThreadRepo
	catalog       *mockCatalog
	translator    *mockTranslator
	ctxTranslator *mockCtxTranslator
	stt           *mockSTT
	tts           *mockTTS
	storage       *mockStorage
}

func newDeps() *deps {
	return &deps{
		records:       &mockTranslationRepo{},
		threads:       &mockThreadRepo{},
		catalog:       &mockCatalog{},
		translator:    &mockTranslator{},
		ctxTranslator: &mockCtxTranslator{},
		stt:           &mockSTT{},
		tts:           &mockTTS{},
		storage:       &mockStorage{},
	}
}

func (d *deps) service() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.LimitsConfig{MaxTextLength: 5000, DefaultPageSize: 20, MaxPageSize: 100}
	return NewService(logger, d.records, d.threads, d.catalog,
		d.translator, d.ctxTranslator, d.stt, d.tts, d.storage, cfg)
}

func authedCtx(profileID uuid.UUID) context.Context {
	return ctxutil.WithProfileID(context.Background(), profileID)
}

func strPtr(s string) *string { return &s }

// ===========================================================================
// TranslateText
// ===========================================================================

func TestTranslateText_PlainPath(t *testing.T) {
	t.Parallel()

	profileID := uuid.New()
	d := newDeps()

	got, err := d.service().TranslateText(authedCtx(profileID), TranslateTextInput{
		SourceText: "안녕하세요",
		SourceLang: "ko-KR",
		TargetLang: "en",
	})
	require.NoError(t, err)

	// No context codes: the plain translator handles the run.
	assert.Equal(t, 1, d.translator.calls)
	assert.Equal(t, 0, d.ctxTranslator.calls)

	assert.Equal(t, profileID, got.ProfileID)
	assert.Equal(t, "translated: 안녕하세요", got.TranslatedText)
	assert.Equal(t, "ko", got.SourceLang, "stored language is normalized")
	assert.Equal(t, "en", got.TargetLang)
	assert.Equal(t, domain.TranslationKindText, got.Kind)
	assert.Nil(t, got.ContextPrimary)
	assert.Nil(t, got.AudioURL)

	require.Len(t, d.records.created, 1, "exactly one record per successful run")
}

func TestTranslateText_ContextReachesProvider(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.catalog.BuildTranslationContextFunc = func(ctx context.Context, primary, sub, lang string) (string, error) {
		assert.Equal(t, "FD6", primary)
		assert.Equal(t, "ordering", sub)
		assert.Equal(t, "en", lang, "the hint is built in the target language")
		return "This is a ordering situation at a restaurant.", nil
	}

	got, err := d.service().TranslateText(authedCtx(uuid.New()), TranslateTextInput{
		SourceText:     "물 주세요",
		SourceLang:     "ko",
		TargetLang:     "en",
		ContextPrimary: strPtr("FD6"),
		ContextSub:     strPtr("ordering"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, d.ctxTranslator.calls)
	assert.Equal(t, 0, d.translator.calls)
	assert.Equal(t, "This is a ordering situation at a restaurant.", d.ctxTranslator.lastSituation)

	// Codes are echoed into the ledger as given.
	require.NotNil(t, got.ContextPrimary)
	assert.Equal(t, "FD6", *got.ContextPrimary)
	require.NotNil(t, got.ContextSub)
	assert.Equal(t, "ordering", *got.ContextSub)
}

func TestTranslateText_EmptyContextFallsBackToPlain(t *testing.T) {
	t.Parallel()

	// Both codes present but the catalog yields nothing (inactive prompt,
	// unknown pair resolved to empty): the plain translator runs.
	d := newDeps()
	d.catalog.BuildTranslationContextFunc = func(ctx context.Context, primary, sub, lang string) (string, error) {
		return "", nil
	}

	_, err := d.service().TranslateText(authedCtx(uuid.New()), TranslateTextInput{
		SourceText:     "hello",
		SourceLang:     "en",
		TargetLang:     "ko",
		ContextPrimary: strPtr("FD6"),
		ContextSub:     strPtr("ordering"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, d.translator.calls)
	assert.Equal(t, 0, d.ctxTranslator.calls)
}

func TestTranslateText_ThreadOverridesContextCodes(t *testing.T) {
	t.Parallel()

	profileID := uuid.New()
	threadID := uuid.New()

	d := newDeps()
	d.threads.GetByIDFunc = func(ctx context.Context, pID, tID uuid.UUID) (*domain.Thread, error) {
		require.Equal(t, profileID, pID)
		require.Equal(t, threadID, tID)
		return &domain.Thread{ID: tID, ProfileID: pID, PrimaryCategory: "HP8", SubCategory: "symptom_explain"}, nil
	}
	d.catalog.BuildTranslationContextFunc = func(ctx context.Context, primary, sub, lang string) (string, error) {
		assert.Equal(t, "HP8", primary)
		assert.Equal(t, "symptom_explain", sub)
		assert.Equal(t, "en", lang)
		return "This is a symptom_explain situation at a hospital.", nil
	}

	got, err := d.service().TranslateText(authedCtx(profileID), TranslateTextInput{
		SourceText:     "머리가 아파요",
		SourceLang:     "ko",
		TargetLang:     "en",
		ThreadID:       &threadID,
		ContextPrimary: strPtr("FD6"), // ignored: the thread wins
		ContextSub:     strPtr("ordering"),
	})
	require.NoError(t, err)

	require.NotNil(t, got.ContextPrimary)
	assert.Equal(t, "HP8", *got.ContextPrimary)
	require.NotNil(t, got.ThreadID)
	assert.Equal(t, threadID, *got.ThreadID)
}

func TestTranslateText_ForeignThread(t *testing.T) {
	t.Parallel()

	threadID := uuid.New()
	d := newDeps() // thread repo defaults to ErrNotFound

	_, err := d.service().TranslateText(authedCtx(uuid.New()), TranslateTextInput{
		SourceText: "hello",
		SourceLang: "en",
		TargetLang: "ko",
		ThreadID:   &threadID,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, d.records.created, "failed run persists nothing")
}

func TestTranslateText_ProviderFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.translator.TranslateFunc = func(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
		return "", domain.ErrExternalService
	}

	_, err := d.service().TranslateText(authedCtx(uuid.New()), TranslateTextInput{
		SourceText: "hello",
		SourceLang: "en",
		TargetLang: "ko",
	})
	require.ErrorIs(t, err, domain.ErrExternalService)
	assert.Empty(t, d.records.created)
}

func TestTranslateText_Validation(t *testing.T) {
	t.Parallel()

	svc := newDeps().service()

	cases := []struct {
		name  string
		input TranslateTextInput
	}{
		{"empty text", TranslateTextInput{SourceLang: "ko", TargetLang: "en"}},
		{"text too long", TranslateTextInput{SourceText: strings.Repeat("가", 5001), SourceLang: "ko", TargetLang: "en"}},
		{"missing source lang", TranslateTextInput{SourceText: "hi", TargetLang: "en"}},
		{"malformed lang", TranslateTextInput{SourceText: "hi", SourceLang: "Korean!", TargetLang: "en"}},
		{"same lang after normalization", TranslateTextInput{SourceText: "hi", SourceLang: "en-US", TargetLang: "en"}},
		{"context code too long", TranslateTextInput{SourceText: "hi", SourceLang: "ko", TargetLang: "en", ContextPrimary: strPtr("ABCDEFGHIJK")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.TranslateText(authedCtx(uuid.New()), tc.input)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTranslateText_MaxLengthBoundary(t *testing.T) {
	t.Parallel()

	d := newDeps()

	// Exactly at the limit passes; the count is runes, not bytes.
	_, err := d.service().TranslateText(authedCtx(uuid.New()), TranslateTextInput{
		SourceText: strings.Repeat("가", 5000),
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.NoError(t, err)
}

func TestTranslateText_NoProfile(t *testing.T) {
	t.Parallel()

	_, err := newDeps().service().TranslateText(context.Background(), TranslateTextInput{
		SourceText: "hi",
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTranslateText_MissionTokenPassthrough(t *testing.T) {
	t.Parallel()

	missionID := uuid.New()
	d := newDeps()

	got, err := d.service().TranslateText(authedCtx(uuid.New()), TranslateTextInput{
		SourceText:        "hello",
		SourceLang:        "en",
		TargetLang:        "ko",
		MissionProgressID: &missionID,
	})
	require.NoError(t, err)
	require.NotNil(t, got.MissionProgressID)
	assert.Equal(t, missionID, *got.MissionProgressID)
}

// ===========================================================================
// TranslateVoice
// ===========================================================================

func TestTranslateVoice_FullPipeline(t *testing.T) {
	t.Parallel()

	profileID := uuid.New()
	d := newDeps()

	got, err := d.service().TranslateVoice(authedCtx(profileID), TranslateVoiceInput{
		Audio:      []byte("opus-bytes"),
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.NoError(t, err)

	// Source text comes from the transcription.
	assert.Equal(t, "안녕하세요", got.SourceText)
	assert.Equal(t, "translated: 안녕하세요", got.TranslatedText)
	assert.Equal(t, domain.TranslationKindVoice, got.Kind)

	require.NotNil(t, got.Confidence)
	assert.Equal(t, 0.95, *got.Confidence)
	require.NotNil(t, got.DurationMS)
	assert.Equal(t, 1500, *got.DurationMS)

	// Audio lands under a key derived from the record ID.
	assert.Equal(t, "tts/"+got.ID.String()+".mp3", d.storage.lastKey)
	assert.Equal(t, "audio/mpeg", d.storage.lastType)
	require.NotNil(t, got.AudioURL)
	assert.Equal(t, "https://storage.example.com/"+d.storage.lastKey, *got.AudioURL)

	require.Len(t, d.records.created, 1)
}

func TestTranslateVoice_STTFailureIsInvalidAudio(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.stt.RecognizeFunc = func(ctx context.Context, audio []byte, lang string) (*provider.SpeechResult, error) {
		return nil, errors.New("codec exploded")
	}

	_, err := d.service().TranslateVoice(authedCtx(uuid.New()), TranslateVoiceInput{
		Audio:      []byte("garbage"),
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.ErrorIs(t, err, domain.ErrInvalidAudio)
	assert.Empty(t, d.records.created)
}

func TestTranslateVoice_TTSFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.tts.SynthesizeFunc = func(ctx context.Context, text, lang string) (*provider.SynthesisResult, error) {
		return nil, domain.ErrExternalService
	}

	_, err := d.service().TranslateVoice(authedCtx(uuid.New()), TranslateVoiceInput{
		Audio:      []byte("opus-bytes"),
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.ErrorIs(t, err, domain.ErrExternalService)
	assert.Empty(t, d.records.created)
}

func TestTranslateVoice_UploadFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.storage.UploadFunc = func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
		return "", domain.ErrExternalService
	}

	_, err := d.service().TranslateVoice(authedCtx(uuid.New()), TranslateVoiceInput{
		Audio:      []byte("opus-bytes"),
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.ErrorIs(t, err, domain.ErrExternalService)
	assert.Empty(t, d.records.created)
}

func TestTranslateVoice_EmptyAudio(t *testing.T) {
	t.Parallel()

	_, err := newDeps().service().TranslateVoice(authedCtx(uuid.New()), TranslateVoiceInput{
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTranslateVoice_SynthesizesTargetLanguage(t *testing.T) {
	t.Parallel()

	d := newDeps()
	var synthLang, synthText string
	d.tts.SynthesizeFunc = func(ctx context.Context, text, lang string) (*provider.SynthesisResult, error) {
		synthText, synthLang = text, lang
		return &provider.SynthesisResult{Audio: []byte("mp3"), DurationMS: 900}, nil
	}

	_, err := d.service().TranslateVoice(authedCtx(uuid.New()), TranslateVoiceInput{
		Audio:      []byte("opus-bytes"),
		SourceLang: "ko",
		TargetLang: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", synthLang)
	assert.Equal(t, "translated: 안녕하세요", synthText)
}

// ===========================================================================
// List / Get
// ===========================================================================

func TestList_FilterPassthroughAndPagination(t *testing.T) {
	t.Parallel()

	profileID := uuid.New()
	threadID := uuid.New()
	kind := domain.TranslationKindVoice

	d := newDeps()
	var gotFilter domain.TranslationFilter
	var gotLimit, gotOffset int
	d.records.ListFunc = func(ctx context.Context, pID uuid.UUID, filter domain.TranslationFilter, limit, offset int) ([]*domain.Translation, int, error) {
		require.Equal(t, profileID, pID)
		gotFilter, gotLimit, gotOffset = filter, limit, offset
		return []*domain.Translation{{ID: uuid.New()}}, 21, nil
	}

	page, err := d.service().List(authedCtx(profileID), ListInput{
		Page:     2,
		Limit:    10,
		Kind:     &kind,
		ThreadID: &threadID,
	})
	require.NoError(t, err)

	assert.Equal(t, &kind, gotFilter.Kind)
	assert.Equal(t, &threadID, gotFilter.ThreadID)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 3, page.TotalPages) // ceil(21/10)
}

func TestList_InvalidKind(t *testing.T) {
	t.Parallel()

	bad := domain.TranslationKind("hologram")
	_, err := newDeps().service().List(authedCtx(uuid.New()), ListInput{Kind: &bad})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGet_ForeignRecord(t *testing.T) {
	t.Parallel()

	_, err := newDeps().service().Get(authedCtx(uuid.New()), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	profileID := uuid.New()
	recordID := uuid.New()
	d := newDeps()
	d.records.GetByIDFunc = func(ctx context.Context, pID, tID uuid.UUID) (*domain.Translation, error) {
		return &domain.Translation{ID: tID, ProfileID: pID, CreatedAt: time.Now()}, nil
	}

	got, err := d.service().Get(authedCtx(profileID), recordID)
	require.NoError(t, err)
	assert.Equal(t, recordID, got.ID)
}

// ===========================================================================
// Delete
// ===========================================================================

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	profileID := uuid.New()
	recordID := uuid.New()
	d := newDeps()
	var deletedBy, deleted uuid.UUID
	d.records.DeleteFunc = func(ctx context.Context, pID, tID uuid.UUID) error {
		deletedBy, deleted = pID, tID
		return nil
	}

	require.NoError(t, d.service().Delete(authedCtx(profileID), recordID))
	assert.Equal(t, profileID, deletedBy)
	assert.Equal(t, recordID, deleted)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.records.DeleteFunc = func(ctx context.Context, pID, tID uuid.UUID) error {
		return domain.ErrNotFound
	}

	err := d.service().Delete(authedCtx(uuid.New()), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
