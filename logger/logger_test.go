package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	cases := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantErr   bool
		skipLevel bool
	}{
		{name: "defaults", wantLevel: logrus.InfoLevel},
		{name: "debug text", level: "debug", format: "text", wantLevel: logrus.DebugLevel},
		{name: "warn json", level: "WARN", format: "json", wantLevel: logrus.WarnLevel},
		{name: "bad level", level: "loud", wantLevel: logrus.InfoLevel, wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true, skipLevel: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Init(tc.level, tc.format)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if !tc.skipLevel {
				assert.Equal(t, tc.wantLevel, Log.GetLevel())
			}
		})
	}
}

func TestForTagsComponent(t *testing.T) {
	require.NoError(t, Init("info", "json"))
	var buf bytes.Buffer
	Log.SetOutput(&buf)

	For("hazard").Info("hero died")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hazard", line["component"])
	assert.Equal(t, "hero died", line["msg"])
}
