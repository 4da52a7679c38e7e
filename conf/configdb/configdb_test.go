package configdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Setup(t *testing.T) *SettingsStore {
	db, err := NewConfigDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}

	settings := &SettingsStore{db.DB}
	return settings
}

func TestSettingNotExist(t *testing.T) {
	settings := Setup(t)

	_, err := settings.Get("asn1-max-frames")
	assert.Equal(t, ErrNoSetting, err)
}

func TestSettingSetGet(t *testing.T) {
	settings := Setup(t)

	err := settings.Set("asn1-max-frames", "64")
	assert.Nil(t, err)

	value, err := settings.Get("asn1-max-frames")
	assert.Nil(t, err)
	assert.Equal(t, "64", value)

	// Setting the same key again replaces the value.
	err = settings.Set("asn1-max-frames", "128")
	assert.Nil(t, err)

	value, err = settings.Get("asn1-max-frames")
	assert.Nil(t, err)
	assert.Equal(t, "128", value)
}

func TestSettingDel(t *testing.T) {
	settings := Setup(t)

	err := settings.Del("asn1-max-frames")
	assert.Equal(t, ErrNoSetting, err)

	err = settings.Set("asn1-max-frames", "64")
	assert.Nil(t, err)

	err = settings.Del("asn1-max-frames")
	assert.Nil(t, err)

	_, err = settings.Get("asn1-max-frames")
	assert.Equal(t, ErrNoSetting, err)
}

func TestSettingList(t *testing.T) {
	settings := Setup(t)

	list, err := settings.List()
	assert.Nil(t, err)
	assert.Equal(t, 0, len(list))

	settings.Set("asn1-max-frames", "64")
	settings.Set("other-key", "value")

	list, err = settings.List()
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{
		"asn1-max-frames": "64",
		"other-key":       "value",
	}, list)
}

func TestSettingsProvider(t *testing.T) {
	settings := Setup(t)
	provider := settings.Provider()

	_, ok := provider.Get("asn1-max-frames")
	assert.False(t, ok)

	settings.Set("asn1-max-frames", "64")
	value, ok := provider.Get("asn1-max-frames")
	assert.True(t, ok)
	assert.Equal(t, "64", value)
}

// Migrating twice must be a no-op, the database is reopened on every
// start.
func TestMigrateTwice(t *testing.T) {
	db, err := NewConfigDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	assert.Nil(t, db.migrate())
}
