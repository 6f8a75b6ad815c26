package common

import (
	"time"

	pkgHTTP "github.com/NielsFilter/learnai/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds a connector with the transport settings shared by
// every outbound integration. Auth differs per service, so callers pass the
// matching option (bearer vs. service-specific header).
func NewBaseConnector(baseURL string, timeout time.Duration, logger *zap.Logger, extra ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: baseURL,
	}

	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(timeout),
		pkgHTTP.WithConnClientTimeout(10 * time.Second),
		pkgHTTP.WithClientKeepAlive(30 * time.Second),
		pkgHTTP.WithIdleConnTimeout(90 * time.Second),
		pkgHTTP.WithResponseHeaderTimeout(timeout),
		pkgHTTP.WithRequestLogging(),
	}
	opts = append(opts, extra...)

	return pkgHTTP.NewConnector(connCfg, opts...)
}
