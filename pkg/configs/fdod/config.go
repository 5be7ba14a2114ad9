package fdod

import (
	"maps"
	"time"

	"github.com/mardi4nfdi/fdofacade/pkg/fdo"
)

// Configuration of fdod.
//
// This is immutable. To get an instance, use Load, Unmarshal or `ConfigMarshall.Seal()` .
type Config struct {
	server  *ServerConfig
	backend *BackendConfig
	fdo     *FDOConfig
}

func (c *Config) Server() *ServerConfig {
	return c.server
}

func (c *Config) Backend() *BackendConfig {
	return c.backend
}

func (c *Config) FDO() *FDOConfig {
	return c.fdo
}

type ServerConfig struct {
	port      string
	rateLimit float64
	rateBurst int
}

// Port where fdod listens on.
func (s *ServerConfig) Port() string {
	return s.port
}

// Requests per second allowed for each client. 0 means unlimited.
func (s *ServerConfig) RateLimit() float64 {
	return s.rateLimit
}

// Burst of requests allowed for each client over RateLimit.
func (s *ServerConfig) RateBurst() int {
	return s.rateBurst
}

// Configuration for the knowledge graph backend.
type BackendConfig struct {
	apiRoot   string
	timeout   time.Duration
	language  string
	userAgent string
}

// URL of the MediaWiki action API, like "https://portal.mardi4nfdi.de/w/api.php"
func (b *BackendConfig) ApiRoot() string {
	return b.apiRoot
}

// Upper bound of time for a single lookup.
func (b *BackendConfig) Timeout() time.Duration {
	return b.timeout
}

// Language of labels and descriptions.
func (b *BackendConfig) Language() string {
	return b.language
}

// User-Agent header sent to the backend.
func (b *BackendConfig) UserAgent() string {
	return b.userAgent
}

// Configuration for rendering FDOs.
type FDOConfig struct {
	fdoRoot     string
	entityRoot  string
	attribution string
	types       map[string]fdo.Kind
}

func (f *FDOConfig) FDORoot() string {
	return f.fdoRoot
}

func (f *FDOConfig) EntityRoot() string {
	return f.entityRoot
}

func (f *FDOConfig) Attribution() string {
	return f.attribution
}

// Class -> kind mappings. Returned map is a copy.
func (f *FDOConfig) Types() map[string]fdo.Kind {
	return maps.Clone(f.types)
}

// TranslatorOptions builds options for fdo.NewTranslator.
func (c *Config) TranslatorOptions() fdo.Options {
	return fdo.Options{
		FDORoot:     c.fdo.FDORoot(),
		EntityRoot:  c.fdo.EntityRoot(),
		Attribution: c.fdo.Attribution(),
		Language:    c.backend.Language(),
		Types:       c.fdo.Types(),
	}
}
