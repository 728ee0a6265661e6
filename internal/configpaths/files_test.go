package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/beangen/internal/configpaths"
)

func TestDefaultConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "beangen"), dir)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/u")
	dir, err = configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u", ".config", "beangen"), dir)

	path, err := configpaths.DefaultConfigPath("yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u", ".config", "beangen", "config.yaml"), path)
}

func TestConfigCandidatePaths(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	type testCase struct {
		userPath string
		check    func(t *testing.T, j, y, tm []string)
	}
	testCases := []testCase{
		{userPath: "custom.toml", check: func(t *testing.T, _, _, tm []string) { assert.Equal(t, "custom.toml", tm[0]) }},
		{userPath: "custom.yml", check: func(t *testing.T, _, y, _ []string) { assert.Equal(t, "custom.yml", y[0]) }},
		{userPath: "custom.conf", check: func(t *testing.T, j, _, _ []string) { assert.Equal(t, "custom.conf", j[0]) }},
		{userPath: "", check: func(t *testing.T, j, y, tm []string) {
			assert.Equal(t, filepath.Join(wd, "beangen.json"), j[0])
			assert.Equal(t, filepath.Join(wd, "beangen.yaml"), y[0])
			assert.Equal(t, filepath.Join(wd, "beangen.yml"), y[1])
			assert.Equal(t, filepath.Join(wd, "beangen.toml"), tm[0])
			assert.Contains(t, j, filepath.Join(wd, ".beangen.json"))
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.userPath, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tc.userPath)
			tc.check(t, j, y, tm)
		})
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, "json", configpaths.Ext("json"))
	assert.Equal(t, "yaml", configpaths.Ext("yml"))
	assert.Equal(t, "toml", configpaths.Ext("toml"))
	assert.Equal(t, "json", configpaths.Ext("xml"))
}
