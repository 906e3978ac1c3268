package common

// UnknownStr is the name returned for out-of-range enum values.
const UnknownStr = "unknown"
