package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	assert.Equal(t, map[string]bool{"*": true}, parseFilter(""))
	assert.Equal(t, map[string]bool{"*": true}, parseFilter("*"))
	assert.Equal(t, map[string]bool{"market": true, "registro": true}, parseFilter("market, Registro"))
}

func TestFilterHook_ChoPhepTatCaKhiKhongCauHinh(t *testing.T) {
	hook := NewFilterHook(&LogConfig{})

	entry := &logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{"module": "market"}}
	require.NoError(t, hook.Fire(entry))

	_, filtered := entry.Data["_filtered"]
	assert.False(t, filtered)
}

func TestFilterHook_LocTheoModule(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterModules: "market"})

	allowed := &logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{"module": "market"}}
	require.NoError(t, hook.Fire(allowed))
	_, filtered := allowed.Data["_filtered"]
	assert.False(t, filtered)

	blocked := &logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{"module": "registro"}}
	require.NoError(t, hook.Fire(blocked))
	assert.Equal(t, true, blocked.Data["_filtered"])
}

func TestFilterHook_LocTheoLogType(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterLogTypes: "error"})

	info := &logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{}}
	require.NoError(t, hook.Fire(info))
	assert.Equal(t, true, info.Data["_filtered"])

	errEntry := &logrus.Entry{Level: logrus.ErrorLevel, Data: logrus.Fields{}}
	require.NoError(t, hook.Fire(errEntry))
	_, filtered := errEntry.Data["_filtered"]
	assert.False(t, filtered)
}
