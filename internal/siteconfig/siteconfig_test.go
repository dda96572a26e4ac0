package siteconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/events"
	"github.com/talkincode/storefront/internal/kvstore"
)

func TestOpenUsesDefaultsAndPersistsThem(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s, err := Open(kv, nil, FactoryDefaults())
	require.NoError(t, err)

	assert.Equal(t, "1313", s.AdminPin())
	assert.Equal(t, "22200000000", s.ContactIdentifier())
	assert.Equal(t, domain.DefaultSiteContent(), s.SiteContent())

	for _, key := range []string{kvstore.KeyAdminPin, kvstore.KeyContactIdentifier, kvstore.KeySiteContent} {
		assert.True(t, kv.Has(key), key)
	}
}

func TestOpenLoadsEachKeyIndependently(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kvstore.SaveString(kv, kvstore.KeyAdminPin, "9999"))
	require.NoError(t, kv.Put(kvstore.KeySiteContent, []byte("garbage")))

	s, err := Open(kv, nil, FactoryDefaults())
	require.NoError(t, err)
	assert.Equal(t, "9999", s.AdminPin())
	assert.Equal(t, "22200000000", s.ContactIdentifier())
	assert.Equal(t, domain.DefaultSiteContent(), s.SiteContent())
}

func TestOpenTreatsNullSiteContentAsMissing(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Put(kvstore.KeySiteContent, []byte("null")))

	s, err := Open(kv, nil, FactoryDefaults())
	require.NoError(t, err)
	assert.Equal(t, "E-Commerce Mauritanie", s.SiteContent().StoreName)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	bus := events.New()
	saved := 0
	require.NoError(t, bus.Subscribe(events.TopicSiteConfig, func(events.Change) { saved++ }))
	s, err := Open(kv, bus, FactoryDefaults())
	require.NoError(t, err)

	content := domain.SiteContent{
		StoreName:    "Boutique Nouakchott",
		HeroTitle:    domain.LocalizedText{Fr: "Salut", Ar: "أهلا"},
		HeroSubtitle: domain.LocalizedText{Fr: "Promo", Ar: "تخفيضات"},
		FooterText:   domain.LocalizedText{Fr: "Pied", Ar: "تذييل"},
	}
	require.NoError(t, s.SaveSettings("2468", "22233334444", content))

	assert.Equal(t, "2468", s.AdminPin())
	assert.Equal(t, "22233334444", s.ContactIdentifier())
	assert.Equal(t, content, s.SiteContent())
	assert.Equal(t, 1, saved)

	reopened, err := Open(kv, nil, FactoryDefaults())
	require.NoError(t, err)
	assert.Equal(t, s.Settings(), reopened.Settings())
}

func TestSaveSettingsAcceptsEmptyValues(t *testing.T) {
	s, err := Open(kvstore.NewMemoryStore(), nil, FactoryDefaults())
	require.NoError(t, err)

	require.NoError(t, s.SaveSettings("", "", domain.SiteContent{}))
	assert.Equal(t, "", s.AdminPin())
	assert.Equal(t, "", s.ContactIdentifier())
}

func TestSaveSettingsWriteFailure(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s, err := Open(kv, nil, FactoryDefaults())
	require.NoError(t, err)
	kv.FailWrites(true)

	err = s.SaveSettings("0000", "222", domain.DefaultSiteContent())
	var perr *kvstore.PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, kvstore.KeySiteContent, perr.Key)
	assert.Equal(t, "0000", s.AdminPin(), "in-memory state is not rolled back")
}
