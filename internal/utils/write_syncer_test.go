package utils_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitid/internal/utils"
)

type recordingDestination struct {
	bytes.Buffer
	flushError error
	syncError  error
	flushes    int
	syncs      int
}

func (destination *recordingDestination) Flush() error {
	destination.flushes++
	return destination.flushError
}

func (destination *recordingDestination) Sync() error {
	destination.syncs++
	return destination.syncError
}

func TestLogWriteSyncerWrite(testInstance *testing.T) {
	testCases := []struct {
		name            string
		flushError      error
		expectedError   string
		expectedFlushes int
	}{
		{name: "flushes_after_entry", expectedFlushes: 1},
		{name: "surfaces_flush_error", flushError: errors.New("flush failed"), expectedError: "flush failed", expectedFlushes: 1},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			destination := &recordingDestination{flushError: testCase.flushError}
			writeSyncer := utils.NewLogWriteSyncer(destination)

			bytesWritten, writeError := writeSyncer.Write([]byte("entry\n"))
			if len(testCase.expectedError) > 0 {
				require.EqualError(testInstance, writeError, testCase.expectedError)
			} else {
				require.NoError(testInstance, writeError)
			}
			require.Equal(testInstance, 6, bytesWritten)
			require.Equal(testInstance, "entry\n", destination.String())
			require.Equal(testInstance, testCase.expectedFlushes, destination.flushes)
			require.Zero(testInstance, destination.syncs)
		})
	}
}

func TestLogWriteSyncerSync(testInstance *testing.T) {
	testCases := []struct {
		name            string
		destination     *recordingDestination
		expectedError   string
		expectedFlushes int
		expectedSyncs   int
	}{
		{name: "flushes_then_syncs", destination: &recordingDestination{}, expectedFlushes: 1, expectedSyncs: 1},
		{name: "sync_error_returned", destination: &recordingDestination{syncError: errors.New("invalid argument")}, expectedError: "invalid argument", expectedFlushes: 1, expectedSyncs: 1},
		{name: "flush_error_skips_sync", destination: &recordingDestination{flushError: errors.New("flush failed")}, expectedError: "flush failed", expectedFlushes: 1},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			syncError := utils.NewLogWriteSyncer(testCase.destination).Sync()
			if len(testCase.expectedError) > 0 {
				require.EqualError(testInstance, syncError, testCase.expectedError)
			} else {
				require.NoError(testInstance, syncError)
			}
			require.Equal(testInstance, testCase.expectedFlushes, testCase.destination.flushes)
			require.Equal(testInstance, testCase.expectedSyncs, testCase.destination.syncs)
		})
	}
}

func TestLogWriteSyncerPlainWriter(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	writeSyncer := utils.NewLogWriteSyncer(destination)

	_, writeError := writeSyncer.Write([]byte("entry"))
	require.NoError(testInstance, writeError)
	require.NoError(testInstance, writeSyncer.Sync())
	require.Equal(testInstance, "entry", destination.String())
}

func TestNewLogWriteSyncerDefaultsToStandardError(testInstance *testing.T) {
	require.NotNil(testInstance, utils.NewLogWriteSyncer(nil))
}
