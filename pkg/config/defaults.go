package config

// Dataset defaults.
const (
	DefaultDatasetCount = 20
	DefaultDatasetSeed  = 20191120
)

// Sort defaults.
const (
	DefaultSortAlgorithm = AlgorithmQuick
)

// Arena defaults. An empty budget and zero max nodes leave node storage
// unbounded.
const (
	DefaultArenaMemoryBudget = ""
	DefaultArenaMaxNodes     = 0
)

// Logging defaults.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

// Telemetry defaults.
const (
	DefaultServiceName  = "algo"
	DefaultOTLPEndpoint = ""
	DefaultOTLPInsecure = false
)
