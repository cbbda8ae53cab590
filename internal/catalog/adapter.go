package catalog

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Adapter is the Rule Catalog Adapter described in spec.md §4.1. It is
// backed by a sqlite database (auto-migrated and seeded on open) and
// caches both query results it serves, mirroring original_source's
// DeckBuff two-level cache.
type Adapter struct {
	db *gorm.DB

	mu         sync.Mutex
	deckCache  map[DeckType][]CardSkeleton
	valueCache map[valueCacheKey]map[CardSkeleton]CardValue
}

// valueCacheKey caches CardValues per (deck type, match type): the
// underlying cards_per_rule row is canonical across deck types, but
// the result map returned to callers is restricted to the cards that
// deck type actually deals, so the cache must vary with it too.
type valueCacheKey struct {
	dt DeckType
	mt MatchType
}

// Open creates (or reuses) a sqlite database at dsn, migrates the
// rule-catalog schema, and seeds it if empty.
func Open(dsn string) (*Adapter, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrCatalog, dsn, err)
	}
	if err := db.AutoMigrate(&CardFace{}, &CardsPerDeck{}, &CardsPerRule{}, &EyesPerFace{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrCatalog, err)
	}
	a := &Adapter{
		db:         db,
		deckCache:  make(map[DeckType][]CardSkeleton),
		valueCache: make(map[valueCacheKey]map[CardSkeleton]CardValue),
	}
	if err := a.seedIfEmpty(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Adapter) seedIfEmpty() error {
	var count int64
	if err := a.db.Model(&CardFace{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: count cards: %v", ErrCatalog, err)
	}
	if count > 0 {
		return nil
	}

	cardIDs := make(map[CardSkeleton]uint)
	faceCatalog := allFaceSuitPairs()
	for _, cs := range faceCatalog {
		row := CardFace{Suit: cs.Suit, Face: cs.Face}
		if err := a.db.Create(&row).Error; err != nil {
			return fmt.Errorf("%w: seed cards: %v", ErrCatalog, err)
		}
		cardIDs[cs] = row.ID
	}

	for _, dt := range []DeckType{Tournament, WithNines} {
		seen := make(map[CardSkeleton]bool)
		for _, cs := range buildDeckSkeleton(dt) {
			if seen[cs] {
				continue
			}
			seen[cs] = true
			row := CardsPerDeck{DeckType: dt, CardID: cardIDs[cs]}
			if err := a.db.Create(&row).Error; err != nil {
				return fmt.Errorf("%w: seed cards_per_deck: %v", ErrCatalog, err)
			}
		}
		for _, f := range facesForDeck(dt) {
			row := EyesPerFace{DeckType: dt, Face: f, Eyes: eyesForFace(f)}
			if err := a.db.Create(&row).Error; err != nil {
				return fmt.Errorf("%w: seed eyes_per_face: %v", ErrCatalog, err)
			}
		}
	}

	// cards_per_rule holds exactly one canonical (trump, rank) row per
	// (match_type, card_id), independent of deck type: seeding it once
	// here (rather than once per deck type) keeps the relation free of
	// the duplicate, mutually-contradicting rows that a per-deck seed
	// pass would otherwise leave behind for every non-Nine card.
	for mt := Normal; mt <= Fleshless; mt++ {
		for cs, v := range buildCardValues(mt) {
			row := CardsPerRule{MatchType: mt, CardID: cardIDs[cs], Trump: v.Trump, Rank: v.Rank}
			if err := a.db.Create(&row).Error; err != nil {
				return fmt.Errorf("%w: seed cards_per_rule: %v", ErrCatalog, err)
			}
		}
	}
	return nil
}

func allFaceSuitPairs() []CardSkeleton {
	var out []CardSkeleton
	for _, s := range allSuits {
		for f := Two; f <= Ace; f++ {
			out = append(out, CardSkeleton{Suit: s, Face: f})
		}
	}
	return out
}

// DeckSkeleton returns two copies of every (suit, face) card belonging
// to deck type dt. Idempotent, deterministic, cached per process.
func (a *Adapter) DeckSkeleton(dt DeckType) ([]CardSkeleton, error) {
	a.mu.Lock()
	if cached, ok := a.deckCache[dt]; ok {
		a.mu.Unlock()
		return cached, nil
	}
	a.mu.Unlock()

	var rows []CardsPerDeck
	if err := a.db.Where("deck_type = ?", dt).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: query cards_per_deck: %v", ErrCatalog, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: deck type %d has no cards", ErrCatalog, dt)
	}

	skeleton := make([]CardSkeleton, 0, len(rows)*2)
	for _, row := range rows {
		var face CardFace
		if err := a.db.First(&face, row.CardID).Error; err != nil {
			return nil, fmt.Errorf("%w: resolve card id %d: %v", ErrCatalog, row.CardID, err)
		}
		cs := CardSkeleton{Suit: face.Suit, Face: face.Face}
		skeleton = append(skeleton, cs, cs)
	}

	a.mu.Lock()
	a.deckCache[dt] = skeleton
	a.mu.Unlock()
	return skeleton, nil
}

// CardValues returns the (eyes, trump, rank) assignment for every
// (suit, face) pair that deck type dt actually deals, under match type
// mt. cards_per_rule holds one canonical row per (match_type, card_id)
// regardless of deck type, so membership is decided separately here
// against cards_per_deck: a card cards_per_rule knows about but dt
// never deals (e.g. the Nine under Tournament) is simply omitted.
func (a *Adapter) CardValues(dt DeckType, mt MatchType) (map[CardSkeleton]CardValue, error) {
	key := valueCacheKey{dt: dt, mt: mt}
	a.mu.Lock()
	if cached, ok := a.valueCache[key]; ok {
		a.mu.Unlock()
		return cached, nil
	}
	a.mu.Unlock()

	var deckRows []CardsPerDeck
	if err := a.db.Where("deck_type = ?", dt).Find(&deckRows).Error; err != nil {
		return nil, fmt.Errorf("%w: query cards_per_deck: %v", ErrCatalog, err)
	}
	if len(deckRows) == 0 {
		return nil, fmt.Errorf("%w: deck type %d has no cards", ErrCatalog, dt)
	}
	memberOf := make(map[uint]bool, len(deckRows))
	for _, r := range deckRows {
		memberOf[r.CardID] = true
	}

	var rules []CardsPerRule
	if err := a.db.Where("match_type = ?", mt).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("%w: query cards_per_rule: %v", ErrCatalog, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: match type %d has no rule rows", ErrCatalog, mt)
	}

	values := make(map[CardSkeleton]CardValue, len(rules))
	for _, r := range rules {
		if !memberOf[r.CardID] {
			continue
		}
		var face CardFace
		if err := a.db.First(&face, r.CardID).Error; err != nil {
			return nil, fmt.Errorf("%w: resolve card id %d: %v", ErrCatalog, r.CardID, err)
		}
		var eyes EyesPerFace
		if err := a.db.Where("deck_type = ? AND face = ?", dt, face.Face).First(&eyes).Error; err != nil {
			return nil, fmt.Errorf("%w: resolve eyes for face %v: %v", ErrCatalog, face.Face, err)
		}
		values[CardSkeleton{Suit: face.Suit, Face: face.Face}] = CardValue{
			Eyes:  eyes.Eyes,
			Trump: r.Trump,
			Rank:  r.Rank,
		}
	}

	a.mu.Lock()
	a.valueCache[key] = values
	a.mu.Unlock()
	return values, nil
}

// Close releases the underlying database handle.
func (a *Adapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
