package config

const (
	delimiter = "."

	KeyVersion = "version"

	KeyLogPrefix = "log"
	KeyLogLevel  = KeyLogPrefix + delimiter + "level"

	KeyCachePrefix   = "cache"
	KeyCachePolicy   = KeyCachePrefix + delimiter + "policy"
	KeyCacheCapacity = KeyCachePrefix + delimiter + "capacity"
	KeyCacheScale    = KeyCachePrefix + delimiter + "scale"

	KeyDeskPrefix     = "desk"
	KeyDeskWorkers    = KeyDeskPrefix + delimiter + "workers"
	KeyDeskBufferSize = KeyDeskPrefix + delimiter + "buffer_size"
)

// Keys lists every configuration key in file order.
var Keys = []string{
	KeyVersion,
	KeyLogLevel,
	KeyCachePolicy,
	KeyCacheCapacity,
	KeyCacheScale,
	KeyDeskWorkers,
	KeyDeskBufferSize,
}
