package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Flags(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	cmd := newRootCmd()

	tests := []struct {
		flag string
		want string
	}{
		{flag: "profile", want: "local"},
		{flag: "config-dir", want: "configs"},
		{flag: "log-file", want: ""},
	}
	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		require.NotNil(t, f, "flag %s", tt.flag)
		assert.Equal(t, tt.want, f.DefValue, "flag %s", tt.flag)
	}
}

func TestNewRootCmd_ProfileFromEnv(t *testing.T) {
	t.Setenv("APP_PROFILE", "dev")

	f := newRootCmd().Flags().Lookup("profile")
	require.NotNil(t, f)
	assert.Equal(t, "dev", f.DefValue)
}

func TestRun_BadProfile(t *testing.T) {
	err := run(t.Context(), &options{profile: "../etc", configDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestOpenLog(t *testing.T) {
	w, closeFn, err := openLog("")
	require.NoError(t, err)
	assert.NotNil(t, w)
	closeFn()

	path := filepath.Join(t.TempDir(), "board.log")
	w, closeFn, err = openLog(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
