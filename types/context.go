package types

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Context threads the store, the clock and the event collector through every
// keeper call. It is a value type; With* methods return copies.
type Context struct {
	ms        MultiStore
	blockTime time.Time
	em        *EventManager
	logger    logrus.FieldLogger
}

func NewContext(ms MultiStore, blockTime time.Time, logger logrus.FieldLogger) Context {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return Context{
		ms:        ms,
		blockTime: blockTime,
		em:        NewEventManager(),
		logger:    logger,
	}
}

func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.KVStore(key)
}

// CacheContext returns a context whose store writes are buffered, plus the
// commit function that flushes them to the parent store. A keeper operation
// that errors out simply never commits, leaving the parent untouched.
func (c Context) CacheContext() (Context, func()) {
	cms := c.ms.CacheMultiStore()
	cc := c
	cc.ms = cms
	return cc, cms.Write
}

// BlockTime is the engine's notion of "now"; all epoch and unlock arithmetic
// derives from it.
func (c Context) BlockTime() time.Time {
	return c.blockTime
}

func (c Context) WithBlockTime(t time.Time) Context {
	c.blockTime = t
	return c
}

func (c Context) EventManager() *EventManager {
	return c.em
}

func (c Context) WithEventManager(em *EventManager) Context {
	c.em = em
	return c
}

func (c Context) Logger() logrus.FieldLogger {
	return c.logger
}

func (c Context) WithLogger(logger logrus.FieldLogger) Context {
	c.logger = logger
	return c
}
