//go:build !windows

package locator

import "github.com/swcarpentry/swc-installer/pkg/logger"

func registryRBin(*logger.Logger) string { return "" }
