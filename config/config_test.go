package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
workload:
  rate_monotonic: true
  tasks:
    - name: motor
      period: 13
      wcet: 2
    - name: camera
      period: 2
      wcet: 1
    - name: lidar
      period: 5
      wcet: 1
    - name: led
      period: 7
      wcet: 1
logging:
  level: debug
metrics:
  prometheus_enabled: true
mqtt:
  broker: tcp://localhost:1883
`

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":9090", cfg.Metrics.PrometheusAddr)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.Broker)

	ts, err := cfg.Workload.TaskSet()
	require.NoError(t, err)
	// rate_monotonic sorts by ascending period.
	assert.Equal(t, "camera", ts[0].Name)
	assert.Equal(t, "motor", ts[3].Name)
	assert.Equal(t, 13.0, ts[3].Deadline)
}

func TestLoadJSON(t *testing.T) {
	data := `{"workload":{"tasks":[{"name":"a","period":4,"wcet":1}]},"logging":{"level":"info"}}`
	cfg, err := Load(writeConfig(t, "config.json", data))
	require.NoError(t, err)
	ts, err := cfg.Workload.TaskSet()
	require.NoError(t, err)
	assert.Len(t, ts, 1)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", "x = 1"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RTF_LOGGING__LEVEL", "warn")
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadWorkload(t *testing.T) {
	data := `
workload:
  tasks:
    - period: 5
      wcet: 6
`
	_, err := Load(writeConfig(t, "config.yaml", data))
	assert.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	data := `
logging:
  level: verbose
`
	_, err := Load(writeConfig(t, "config.yaml", data))
	assert.Error(t, err)
}
