package bank

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/model"
)

// ManifestFile is the well-known name of the bank manifest within the
// banks directory.
const ManifestFile = "questions.json"

// BankInfo describes one discovered, playable bank.
type BankInfo struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Subject string `json:"subject"`
}

// manifest is the wire format of the bank manifest file.
type manifest struct {
	Bases []struct {
		File string `json:"file"`
		Name string `json:"name"`
	} `json:"bases"`
}

// Loader resolves question banks from the manifest, from referenced files,
// or from a bank embedded in a session. It never lets a failure escape:
// discovery degrades to an empty list and Load degrades to the built-in
// default bank.
type Loader struct {
	fetcher Fetcher
	log     zerolog.Logger
}

func NewLoader(fetcher Fetcher, log zerolog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		log:     log.With().Str("component", "bank_loader").Logger(),
	}
}

// Discover reads the manifest and returns every candidate that fetches,
// parses and Strict-validates. Unreachable or invalid candidates are
// skipped with a warning. A broken manifest yields an empty result;
// callers treat that as "use the hardcoded fallback list".
func (l *Loader) Discover(ctx context.Context) []BankInfo {
	raw, err := l.fetcher.Fetch(ctx, ManifestFile)
	if err != nil {
		l.log.Error().Err(err).Msg("Failed to fetch bank manifest")
		return nil
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil || m.Bases == nil {
		l.log.Error().Err(err).Msg("Bank manifest is malformed")
		return nil
	}

	var banks []BankInfo
	for _, base := range m.Bases {
		data, err := l.fetcher.Fetch(ctx, base.File)
		if err != nil {
			l.log.Warn().Err(err).Str("file", base.File).Msg("Bank file unreachable, skipping")
			continue
		}
		if !Strict(data) {
			l.log.Warn().Str("file", base.File).Msg("Bank file failed validation, skipping")
			continue
		}

		var b model.QuestionBank
		if err := json.Unmarshal(data, &b); err != nil {
			l.log.Warn().Err(err).Str("file", base.File).Msg("Bank file failed to decode, skipping")
			continue
		}

		subject := b.Subject
		if subject == "" {
			subject = base.Name
		}
		banks = append(banks, BankInfo{Name: base.Name, Path: base.File, Subject: subject})
	}

	return banks
}

// Load resolves the bank for a session: the embedded uploaded bank when
// ref is the "uploaded" sentinel, otherwise a fetch-and-parse of the
// referenced file. Every failure path lands on DefaultBank, so callers
// always receive a usable bank.
func (l *Loader) Load(ctx context.Context, ref string, uploaded *model.QuestionBank) *model.QuestionBank {
	if ref == model.QuestionsFileUploaded {
		if CheckBank(uploaded) {
			return uploaded
		}
		l.log.Warn().Msg("Embedded uploaded bank is missing or malformed, using default bank")
		return DefaultBank()
	}

	raw, err := l.fetcher.Fetch(ctx, ref)
	if err != nil {
		l.log.Error().Err(err).Str("ref", ref).Msg("Failed to fetch bank, using default bank")
		return DefaultBank()
	}

	var b model.QuestionBank
	if err := json.Unmarshal(raw, &b); err != nil {
		l.log.Error().Err(err).Str("ref", ref).Msg("Failed to parse bank, using default bank")
		return DefaultBank()
	}
	if len(b.Categories) == 0 {
		l.log.Error().Str("ref", ref).Msg("Bank has no categories, using default bank")
		return DefaultBank()
	}

	return &b
}

// FallbackBanks is the hardcoded list used when discovery comes back
// empty, mirroring the files shipped in the banks directory.
func FallbackBanks() []BankInfo {
	return []BankInfo{
		{Name: "History", Path: "history1.json", Subject: "History"},
		{Name: "Mathematics", Path: "math1.json", Subject: "Mathematics"},
	}
}
