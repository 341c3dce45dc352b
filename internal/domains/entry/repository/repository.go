package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bytes"
	"context"
	"dashboard/config"
	"dashboard/infras/otel"
	"dashboard/internal/domains/entry/model"
	"dashboard/shared/constant"
	"dashboard/shared/failure"
	"dashboard/shared/validator"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/entries.yaml
var embeddedFixture []byte

type Entry interface {
	GetAll(ctx context.Context) ([]model.Entry, error)
	Get(ctx context.Context, id string) (model.Entry, error)
}

type fixtureFile struct {
	Entries []model.Entry `yaml:"entries"`
}

type repositoryImpl struct {
	entries []model.Entry
	index   map[string]int
	otel    otel.Otel
}

// New loads the entry store from DASHBOARD_FIXTURE_PATH, or from the embedded fixture
// when no path is configured. The store never changes after loading.
func New(cfg *config.Config, ot otel.Otel) Entry {
	data := embeddedFixture
	source := "embedded"

	if path := cfg.Dashboard.FixturePath; path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to read entry fixture")
		}

		data = raw
		source = path
	}

	entries, err := Load(data)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("Failed to load entry fixture")
	}

	log.Info().Int("entries", len(entries)).Str("source", source).Msg("Entry store loaded")

	return NewFromEntries(entries, ot)
}

// NewFromEntries builds a store over a copy of entries, which must have unique ids.
func NewFromEntries(entries []model.Entry, ot otel.Otel) Entry {
	repo := &repositoryImpl{
		entries: slices.Clone(entries),
		index:   make(map[string]int, len(entries)),
		otel:    ot,
	}

	for i, entry := range repo.entries {
		repo.index[entry.ID] = i
	}

	return repo
}

// Load decodes and validates a YAML fixture document.
func Load(data []byte) ([]model.Entry, error) {
	var file fixtureFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode entry fixture: %w", err)
	}

	ids := make([]string, len(file.Entries))

	for i := range file.Entries {
		if err := validator.ValidateStruct(&file.Entries[i]); err != nil {
			return nil, fmt.Errorf("invalid entry at position %d: %w", i, err)
		}

		ids[i] = file.Entries[i].ID
	}

	if err := validator.ValidateVar(ids, "unique"); err != nil {
		return nil, fmt.Errorf("entry ids must be unique: %w", err)
	}

	return file.Entries, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Entry, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	scope.SetAttribute("entries.count", len(r.entries))

	return slices.Clone(r.entries), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Entry, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	scope.SetAttribute("entry.id", id)

	i, ok := r.index[id]
	if !ok {
		err := failure.NotFound(model.EntityName, id)
		scope.TraceError(err)

		return model.Entry{}, err //nolint:wrapcheck
	}

	return r.entries[i], nil
}
