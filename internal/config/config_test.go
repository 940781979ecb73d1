package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdminIDs(t *testing.T) {
	ids, err := parseAdminIDs("123456789")
	require.NoError(t, err)
	assert.Equal(t, []int64{123456789}, ids)

	ids, err = parseAdminIDs("1, 2 ,3")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	ids, err = parseAdminIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseAdminIDs("1,abc")
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{10, 20}}

	assert.True(t, cfg.IsAdmin(10))
	assert.True(t, cfg.IsAdmin(20))
	assert.False(t, cfg.IsAdmin(30))
}

func TestNotifyAdminID(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{10, 20}}
	assert.Equal(t, int64(10), cfg.NotifyAdminID())

	empty := &Config{}
	assert.Zero(t, empty.NotifyAdminID())
}
