package bank_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/quizboard/quizboard-backend/internal/bank"
	"github.com/quizboard/quizboard-backend/internal/model"
)

type fakeFetcher struct {
	files map[string][]byte
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("fetch failed: " + path)
	}
	return data, nil
}

func newLoader(files map[string][]byte) *bank.Loader {
	return bank.NewLoader(&fakeFetcher{files: files}, zerolog.Nop())
}

func TestLoader_Discover(t *testing.T) {
	manifest := `{"bases": [
		{"file": "good.json", "name": "Good"},
		{"file": "nosubject.json", "name": "No Subject"},
		{"file": "missing.json", "name": "Missing"}
	]}`

	loader := newLoader(map[string][]byte{
		bank.ManifestFile: []byte(manifest),
		"good.json":       []byte(validBank),
		// Strict-invalid: subject is required for discovery.
		"nosubject.json": []byte(`{"categories": [{"id": 1, "name": "A", "questions": [{"text": "Q", "options": ["a","b"], "correctAnswer": 0, "points": 10}]}]}`),
	})

	banks := loader.Discover(context.Background())
	require.Len(t, banks, 1)
	require.Equal(t, "Good", banks[0].Name)
	require.Equal(t, "good.json", banks[0].Path)
	require.Equal(t, "Test", banks[0].Subject)
}

func TestLoader_DiscoverManifestUnreachable(t *testing.T) {
	loader := newLoader(nil)
	require.Empty(t, loader.Discover(context.Background()))
}

func TestLoader_DiscoverManifestMalformed(t *testing.T) {
	loader := newLoader(map[string][]byte{
		bank.ManifestFile: []byte(`{"unexpected": true}`),
	})
	require.Empty(t, loader.Discover(context.Background()))
}

func TestLoader_Load(t *testing.T) {
	loader := newLoader(map[string][]byte{
		"good.json":    []byte(validBank),
		"garbage.json": []byte(`{{{`),
		"nocats.json":  []byte(`{"subject": "T", "categories": []}`),
	})

	t.Run("valid file", func(t *testing.T) {
		b := loader.Load(context.Background(), "good.json", nil)
		require.Equal(t, "Test", b.Subject)
		require.Len(t, b.Categories, 1)
	})

	t.Run("fetch failure falls back to default", func(t *testing.T) {
		b := loader.Load(context.Background(), "missing.json", nil)
		require.Equal(t, bank.DefaultBank().Subject, b.Subject)
	})

	t.Run("parse failure falls back to default", func(t *testing.T) {
		b := loader.Load(context.Background(), "garbage.json", nil)
		require.Equal(t, bank.DefaultBank().Subject, b.Subject)
	})

	t.Run("empty categories falls back to default", func(t *testing.T) {
		b := loader.Load(context.Background(), "nocats.json", nil)
		require.Equal(t, bank.DefaultBank().Subject, b.Subject)
	})
}

func TestLoader_LoadUploaded(t *testing.T) {
	loader := newLoader(nil)

	uploaded := &model.QuestionBank{
		Categories: []model.Category{{
			ID:   "1",
			Name: "A",
			Questions: []model.Question{
				{ID: "1", Text: "Q", Options: []string{"a", "b"}, CorrectAnswer: 0, Points: 10},
			},
		}},
	}

	t.Run("valid embedded bank", func(t *testing.T) {
		b := loader.Load(context.Background(), model.QuestionsFileUploaded, uploaded)
		require.Same(t, uploaded, b)
	})

	t.Run("missing embedded bank falls back to default", func(t *testing.T) {
		b := loader.Load(context.Background(), model.QuestionsFileUploaded, nil)
		require.Equal(t, bank.DefaultBank().Subject, b.Subject)
	})

	t.Run("malformed embedded bank falls back to default", func(t *testing.T) {
		broken := &model.QuestionBank{Categories: []model.Category{}}
		b := loader.Load(context.Background(), model.QuestionsFileUploaded, broken)
		require.Equal(t, bank.DefaultBank().Subject, b.Subject)
	})
}

func TestDefaultBank_IsStrictValid(t *testing.T) {
	raw, err := json.Marshal(bank.DefaultBank())
	require.NoError(t, err)
	require.True(t, bank.Strict(raw), "the fallback bank must never fail validation")

	total := 0
	for _, cat := range bank.DefaultBank().Categories {
		total += len(cat.Questions)
	}
	require.Len(t, bank.DefaultBank().Categories, 4)
	require.Equal(t, 12, total)
}

func TestFallbackBanks_NotEmpty(t *testing.T) {
	require.NotEmpty(t, bank.FallbackBanks())
}
