package aga8

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bulletinYAML = `
samples:
  - id: BOL-001
    composition:
      Metano: 96.5
      Nitrogênio: 0.3
      CO2: 0.6
      Etano: 1.8
      Propano: 0.45
      i-Butano: 0.1
      n-Butano: 0.1
      i-Pentano: 0.05
      n-Pentano: 0.03
      n-Hexano: 0.07
  - id: BOL-002
    pressure: 6
    pressure_unit: bar
    temperature: 20
    composition:
      methane: 70
      ethane: 10
      propane: 13
      n_butane: 7
  - composition:
      methane: 100
  - id: BOL-004
    pressure: 100
    pressure_unit: mmHg
    composition:
      methane: 96
      ethane: 3
      propane: 1
`

func Test_ParseBulletin(t *testing.T) {
	b, err := ParseBulletin([]byte(bulletinYAML))
	require.NoError(t, err)
	require.Len(t, b.Samples, 4)

	assert.Equal(t, "BOL-001", b.Samples[0].ID)
	_, err = uuid.Parse(b.Samples[2].ID)
	assert.NoError(t, err)

	c := b.Samples[1].Conditions(DefaultConfig().Conditions)
	assert.Equal(t, 6.0, c.Pressure)
	assert.Equal(t, "bar", c.PressureUnit)
	assert.Equal(t, 20.0, c.Temperature)
	assert.Equal(t, UnitCelsius, c.TemperatureUnit)

	_, err = ParseBulletin([]byte("samples: []"))
	assert.Error(t, err)
	_, err = ParseBulletin([]byte("samples: ["))
	assert.Error(t, err)
}

func Test_LoadBulletin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulletin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bulletinYAML), 0o644))
	b, err := LoadBulletin(path)
	require.NoError(t, err)
	assert.Len(t, b.Samples, 4)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write([]byte(bulletinYAML))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	gzPath := filepath.Join(t.TempDir(), "bulletin.yaml.gz")
	require.NoError(t, os.WriteFile(gzPath, buf.Bytes(), 0o644))

	b, err = LoadBulletin(gzPath)
	require.NoError(t, err)
	assert.Equal(t, "BOL-002", b.Samples[1].ID)

	_, err = LoadBulletin(path + ".missing")
	assert.Error(t, err)
}

func Test_Evaluator(t *testing.T) {
	b, err := ParseBulletin([]byte(bulletinYAML))
	require.NoError(t, err)

	e, err := NewEvaluator(DefaultConfig())
	require.NoError(t, err)
	reports := e.Evaluate(b)
	require.Len(t, reports, 4)

	// reference gas at the default 558 kPa / 55 °C
	assert.Equal(t, StatusValid, reports[0].Status)
	require.NotNil(t, reports[0].Result)
	assert.True(t, reports[0].Result.Calibrated)
	assert.Equal(t, 0.9927517446, reports[0].Result.CompressibilityFactor)

	// out of AGA #8 range: computed but not validated
	assert.Equal(t, StatusInvalid, reports[1].Status)
	assert.InDelta(t, 600, reports[1].PressureKPa, 1e-9)
	require.NotNil(t, reports[1].Result)
	assert.Len(t, reports[1].Violations, 2)

	// no ethane or propane
	assert.Equal(t, StatusInvalid, reports[2].Status)
	assert.Nil(t, reports[2].Result)
	assert.Contains(t, reports[2].Error, "ethane")

	// unknown unit
	assert.Equal(t, StatusInvalid, reports[3].Status)
	assert.Contains(t, reports[3].Error, "mmHg")
}
