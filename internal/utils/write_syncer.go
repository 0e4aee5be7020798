package utils

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap/zapcore"
)

type flushableDestination interface {
	Flush() error
}

type syncableDestination interface {
	Sync() error
}

// LogWriteSyncer is the zapcore.WriteSyncer behind every logger built by LoggerFactory.
// Entries are written one at a time and buffered destinations are flushed after each entry,
// so diagnostics reach stderr before the identity line is printed and the process exits.
type LogWriteSyncer struct {
	destination io.Writer
	mutex       sync.Mutex
}

var _ zapcore.WriteSyncer = (*LogWriteSyncer)(nil)

// NewLogWriteSyncer targets destination, or standard error when destination is nil.
func NewLogWriteSyncer(destination io.Writer) *LogWriteSyncer {
	if destination == nil {
		destination = os.Stderr
	}
	return &LogWriteSyncer{destination: destination}
}

// Write emits one encoded entry and flushes the destination when it buffers.
func (writeSyncer *LogWriteSyncer) Write(entry []byte) (int, error) {
	writeSyncer.mutex.Lock()
	defer writeSyncer.mutex.Unlock()

	bytesWritten, writeError := writeSyncer.destination.Write(entry)
	if writeError != nil {
		return bytesWritten, writeError
	}
	return bytesWritten, writeSyncer.flushLocked()
}

// Sync flushes the destination and then syncs it when it is a file.
// Terminals and pipes reject fsync with EINVAL or ENOTSUP; callers decide whether that matters.
func (writeSyncer *LogWriteSyncer) Sync() error {
	writeSyncer.mutex.Lock()
	defer writeSyncer.mutex.Unlock()

	if flushError := writeSyncer.flushLocked(); flushError != nil {
		return flushError
	}
	if syncable, isSyncable := writeSyncer.destination.(syncableDestination); isSyncable {
		return syncable.Sync()
	}
	return nil
}

func (writeSyncer *LogWriteSyncer) flushLocked() error {
	if flushable, isFlushable := writeSyncer.destination.(flushableDestination); isFlushable {
		return flushable.Flush()
	}
	return nil
}
