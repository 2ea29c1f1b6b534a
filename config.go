package adoc

import "github.com/goliatone/go-adoc/internal/runtimeconfig"

var (
	ErrScanExtensionRequired   = runtimeconfig.ErrScanExtensionRequired
	ErrScanExtensionInvalid    = runtimeconfig.ErrScanExtensionInvalid
	ErrScanWorkersInvalid      = runtimeconfig.ErrScanWorkersInvalid
	ErrOutputFormatInvalid     = runtimeconfig.ErrOutputFormatInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ScanConfig    = runtimeconfig.ScanConfig
	OutputConfig  = runtimeconfig.OutputConfig
	LabelsConfig  = runtimeconfig.LabelsConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML file layered over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
