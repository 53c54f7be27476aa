package locator

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"github.com/swcarpentry/swc-installer/pkg/logger"
)

// registryRBin reads the install path recorded by the R for Windows
// installer and returns its bin directory.
func registryRBin(log *logger.Logger) string {
	for _, root := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
		k, err := registry.OpenKey(root, `SOFTWARE\R-core\R`, registry.QUERY_VALUE|registry.WOW64_64KEY)
		if err != nil {
			continue
		}
		path, _, err := k.GetStringValue("InstallPath")
		_ = k.Close()
		if err == nil && path != "" {
			log.Debug().Msgf("R install path from the registry: %v", path)
			return filepath.Join(path, "bin")
		}
	}
	return ""
}
