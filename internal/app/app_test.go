package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spacedata/tlefetch/internal/config"
)

const twoRecordResponse = `[
	{"OBJECT_NAME":"ISS","NORAD_CAT_ID":"25544","EPOCH":"2023-01-01T00:00:00","REV_AT_EPOCH":"1000","TLE_LINE1":"1 25544U ...","TLE_LINE2":"2 25544 ..."},
	{"OBJECT_NAME":null,"NORAD_CAT_ID":"20580","EPOCH":"2023-01-01T00:00:00","REV_AT_EPOCH":"500","TLE_LINE1":"1 20580U ...","TLE_LINE2":"2 20580 ..."}
]`

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	return &config.Settings{
		Username:              "alice",
		Password:              "hunter2",
		NoradIDs:              []int{25544, 20580},
		ConnectionTimeout:     5,
		ConnectionReadTimeout: 10,
		OutputDirectory:       t.TempDir(),
		OutputFilename:        "catalog.txt",
	}
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ajaxauth/login", r.URL.Path)
		assert.Equal(t, "alice", r.PostFormValue("identity"))
		w.Write([]byte(twoRecordResponse))
	}))
	defer srv.Close()

	settings := testSettings(t)
	err := Run(context.Background(), settings, zap.NewNop(), WithBaseURL(srv.URL))
	require.NoError(t, err)

	content, err := os.ReadFile(settings.OutputPath())
	require.NoError(t, err)
	want := "ISS\n1 25544U ...\n2 25544 ...\nUnknown\n1 20580U ...\n2 20580 ...\n"
	assert.Equal(t, want, string(content))
}

func TestRun_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	settings := testSettings(t)
	err := Run(context.Background(), settings, zap.NewNop(), WithBaseURL(srv.URL))
	require.Error(t, err)

	// nothing written when the fetch fails
	_, statErr := os.Stat(settings.OutputPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_DecodeFailureWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// second element is missing TLE_LINE2
		w.Write([]byte(`[
			{"OBJECT_NAME":"ISS","NORAD_CAT_ID":"25544","EPOCH":"2023-01-01T00:00:00","REV_AT_EPOCH":"1000","TLE_LINE1":"1 25544U ...","TLE_LINE2":"2 25544 ..."},
			{"OBJECT_NAME":"HST","NORAD_CAT_ID":"20580","EPOCH":"2023-01-01T00:00:00","REV_AT_EPOCH":"500","TLE_LINE1":"1 20580U ..."}
		]`))
	}))
	defer srv.Close()

	settings := testSettings(t)
	err := Run(context.Background(), settings, zap.NewNop(), WithBaseURL(srv.URL))
	require.Error(t, err)

	_, statErr := os.Stat(settings.OutputPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MissingOutputDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(twoRecordResponse))
	}))
	defer srv.Close()

	settings := testSettings(t)
	settings.OutputDirectory = filepath.Join(settings.OutputDirectory, "does-not-exist")
	err := Run(context.Background(), settings, zap.NewNop(), WithBaseURL(srv.URL))
	require.Error(t, err)
}
