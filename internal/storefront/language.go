package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/rs/zerolog"
)

type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageIndonesian
}

// LanguagePreference is persisted as the bare two-letter code.
type LanguagePreference struct {
	mu    sync.Mutex
	store kv.Store
	log   *zerolog.Logger
	lang  Language
}

func OpenLanguage(ctx context.Context, store kv.Store, opts Options) *LanguagePreference {
	opts = opts.withDefaults()
	p := &LanguagePreference{store: store, log: opts.Logger, lang: LanguageEnglish}

	b, err := store.Get(ctx, KeyLanguage)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		p.log.Warn().Err(err).Str("key", KeyLanguage).Msg("load language failed, using default")
	case Language(b).Valid():
		p.lang = Language(b)
	default:
		p.log.Warn().Str("key", KeyLanguage).Str("value", string(b)).Msg("unknown language, using default")
	}
	return p
}

func (p *LanguagePreference) Get() Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang
}

// Set: hanya "en" / "id", selain itu return false.
func (p *LanguagePreference) Set(ctx context.Context, lang Language) bool {
	if !lang.Valid() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = lang
	p.persist(ctx)
	return true
}

func (p *LanguagePreference) Toggle(ctx context.Context) Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lang == LanguageIndonesian {
		p.lang = LanguageEnglish
	} else {
		p.lang = LanguageIndonesian
	}
	p.persist(ctx)
	return p.lang
}

func (p *LanguagePreference) persist(ctx context.Context) {
	if err := p.store.Set(ctx, KeyLanguage, []byte(p.lang)); err != nil {
		p.log.Error().Err(err).Str("key", KeyLanguage).Msg("save language failed")
	}
}
