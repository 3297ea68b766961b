package schema

// Custom string types for type safety.
type (
	// Source identifies one upstream signal source.
	Source string

	// CollectorStatus represents the outcome of a collector run.
	CollectorStatus string

	// Dimension represents one trust scoring dimension.
	Dimension string

	// LicenseRisk represents a license risk class.
	LicenseRisk string

	// ZombieSeverity represents the severity of an abandonment finding.
	ZombieSeverity string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the backend for cache and history storage.
	StoreBackend string
)

// All upstream signal sources.
const (
	RegistrySource   Source = "registry"
	RepoSource       Source = "repo"
	VulnsSource      Source = "vulns"
	FundingSource    Source = "funding"
	PopularitySource Source = "popularity"
	LicenseSource    Source = "license"
)

// Sources lists all six signal sources in presentation order.
var Sources = []Source{
	RegistrySource,
	RepoSource,
	VulnsSource,
	FundingSource,
	PopularitySource,
	LicenseSource,
}

// All collector statuses.
const (
	StatusSuccess CollectorStatus = "success"
	StatusCached  CollectorStatus = "cached"
	StatusError   CollectorStatus = "error"
	StatusOffline CollectorStatus = "offline"
)

// All trust scoring dimensions.
const (
	SecurityDim   Dimension = "security"
	MaintainerDim Dimension = "maintainer"
	ActivityDim   Dimension = "activity"
	PopularityDim Dimension = "popularity"
	FundingDim    Dimension = "funding"
	LicenseDim    Dimension = "license"
)

// Dimensions lists all six scoring dimensions in presentation order.
var Dimensions = []Dimension{
	SecurityDim,
	MaintainerDim,
	ActivityDim,
	PopularityDim,
	FundingDim,
	LicenseDim,
}

// DefaultWeights maps each dimension to its default weight. The weights
// must sum to 1.0; engine construction fails otherwise.
var DefaultWeights = map[Dimension]float64{
	SecurityDim:   0.25,
	MaintainerDim: 0.20,
	ActivityDim:   0.20,
	PopularityDim: 0.15,
	FundingDim:    0.10,
	LicenseDim:    0.10,
}

// All license risk classes.
const (
	LicenseSafe     LicenseRisk = "safe"
	LicenseCautious LicenseRisk = "cautious"
	LicenseRisky    LicenseRisk = "risky"
	LicenseUnknown  LicenseRisk = "unknown"
)

// All zombie severities.
const (
	ZombieNone     ZombieSeverity = "none"
	ZombieWarning  ZombieSeverity = "warning"
	ZombieCritical ZombieSeverity = "critical"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes is the set of accepted output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// All store backends supported.
const (
	JSONBackend       StoreBackend = "json" // default cache backend
	SQLiteBackend     StoreBackend = "sqlite"
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ValidStoreBackends is the set of accepted store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	JSONBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
