package fdod

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/mardi4nfdi/fdofacade/pkg/fdo"
	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const DefaultPort = "8000"

func Load(filepath string) (*Config, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*Config, error) {
	var out ConfigMarshall
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}
	return out.Seal()
}

// Configuration of fdod, as written in yaml.
//
// This type is mutable. Use `Seal()` to get verified, immutable `*Config` .
type ConfigMarshall struct {
	Server  *ServerConfigMarshall  `yaml:"server,omitempty"`
	Backend *BackendConfigMarshall `yaml:"backend"`
	FDO     *FDOConfigMarshall     `yaml:"fdo,omitempty"`
}

type ServerConfigMarshall struct {
	Port      string  `yaml:"port,omitempty"`
	RateLimit float64 `yaml:"rateLimit,omitempty"`
	RateBurst int     `yaml:"rateBurst,omitempty"`
}

type BackendConfigMarshall struct {
	ApiRoot   string        `yaml:"apiRoot"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	Language  string        `yaml:"language,omitempty"`
	UserAgent string        `yaml:"userAgent,omitempty"`
}

type FDOConfigMarshall struct {
	FDORoot     string            `yaml:"fdoRoot,omitempty"`
	EntityRoot  string            `yaml:"entityRoot,omitempty"`
	Attribution string            `yaml:"attribution,omitempty"`
	Types       map[string]string `yaml:"types,omitempty"`
}

// verify configuration and create readonly version of this.
//
// Omitted sections and values are filled with defaults.
func (cm *ConfigMarshall) Seal() (*Config, error) {
	const path = "(root)"

	server, err := orEmpty(cm.Server).seal(path + ".server")
	if err != nil {
		return nil, err
	}
	if cm.Backend == nil {
		return nil, fmt.Errorf("%w: %s.backend is required", ErrInvalidConfig, path)
	}
	backend, err := cm.Backend.seal(path + ".backend")
	if err != nil {
		return nil, err
	}
	f, err := orEmpty(cm.FDO).seal(path + ".fdo")
	if err != nil {
		return nil, err
	}

	return &Config{server: server, backend: backend, fdo: f}, nil
}

func (sm *ServerConfigMarshall) seal(path string) (*ServerConfig, error) {
	port := sm.Port
	if port == "" {
		port = DefaultPort
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || 65535 < n {
		return nil, fmt.Errorf("%w: %s.port should be a port number: %q", ErrInvalidConfig, path, port)
	}
	if sm.RateLimit < 0 {
		return nil, fmt.Errorf("%w: %s.rateLimit should not be negative: %v", ErrInvalidConfig, path, sm.RateLimit)
	}
	burst := sm.RateBurst
	if burst < 0 {
		return nil, fmt.Errorf("%w: %s.rateBurst should not be negative: %d", ErrInvalidConfig, path, burst)
	}
	if burst == 0 {
		burst = int(math.Ceil(sm.RateLimit))
	}
	return &ServerConfig{port: port, rateLimit: sm.RateLimit, rateBurst: burst}, nil
}

func (bm *BackendConfigMarshall) seal(path string) (*BackendConfig, error) {
	if bm.ApiRoot == "" {
		return nil, fmt.Errorf("%w: %s.apiRoot is required", ErrInvalidConfig, path)
	}
	if err := httpURL(bm.ApiRoot); err != nil {
		return nil, fmt.Errorf("%w: %s.apiRoot: %w", ErrInvalidConfig, path, err)
	}

	timeout := bm.Timeout
	if timeout == 0 {
		timeout = wikibase.DefaultTimeout
	}
	if timeout < 0 {
		return nil, fmt.Errorf("%w: %s.timeout should be positive: %s", ErrInvalidConfig, path, timeout)
	}

	return &BackendConfig{
		apiRoot:   bm.ApiRoot,
		timeout:   timeout,
		language:  or(bm.Language, wikibase.DefaultLanguage),
		userAgent: or(bm.UserAgent, wikibase.DefaultUserAgent),
	}, nil
}

func (fm *FDOConfigMarshall) seal(path string) (*FDOConfig, error) {
	fdoRoot := or(fm.FDORoot, fdo.DefaultFDORoot)
	if err := httpURL(fdoRoot); err != nil {
		return nil, fmt.Errorf("%w: %s.fdoRoot: %w", ErrInvalidConfig, path, err)
	}
	entityRoot := or(fm.EntityRoot, fdo.DefaultEntityRoot)
	if err := httpURL(entityRoot); err != nil {
		return nil, fmt.Errorf("%w: %s.entityRoot: %w", ErrInvalidConfig, path, err)
	}

	types := fdo.DefaultTypes()
	for class, kind := range fm.Types {
		id, err := wikibase.ParseIdentifier(class)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.types: %w", ErrInvalidConfig, path, err)
		}
		k, err := fdo.ParseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.types.%s: %w", ErrInvalidConfig, path, class, err)
		}
		types[id.String()] = k
	}

	return &FDOConfig{
		fdoRoot:     fdoRoot,
		entityRoot:  entityRoot,
		attribution: or(fm.Attribution, fdo.DefaultAttribution),
		types:       types,
	}, nil
}

func httpURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("should be http(s) URL: %s", s)
	}
	if u.Host == "" {
		return fmt.Errorf("no host: %s", s)
	}
	return nil
}

func orEmpty[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	return v
}

func or(s, dflt string) string {
	if s == "" {
		return dflt
	}
	return s
}
