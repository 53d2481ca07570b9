// File: utils/constants.go
package utils

// SnapshotKeyPrefix is the prefix for schedule snapshot keys in Redis.
const SnapshotKeyPrefix = "sched:snap:"

// CoalesceKeyPrefix is the prefix for treatment search coalescing keys.
const CoalesceKeyPrefix = "treat:search:"
