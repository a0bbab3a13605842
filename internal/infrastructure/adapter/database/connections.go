package database

import (
	"fmt"
	"sort"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	domainschema "github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database/schema"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// Connections resolves named gorm connections; the empty name selects the default one
type Connections struct {
	mu            sync.RWMutex
	defaultName   string
	dbs           map[string]*gorm.DB
	queryTimeouts map[string]time.Duration
	morphKeyType  domainschema.MorphKeyType
	logger        coreport.Logger
}

// ConnectionsOption configures Connections
type ConnectionsOption func(*Connections)

// WithMorphKeyType sets the key type schema builders use for Morphs and NullableMorphs
func WithMorphKeyType(keyType domainschema.MorphKeyType) ConnectionsOption {
	return func(c *Connections) {
		c.morphKeyType = keyType
	}
}

var (
	_ repository.ConnectionResolver = (*Connections)(nil)
	_ migration.BuilderResolver     = (*Connections)(nil)
)

// NewConnections creates an empty registry whose default connection is defaultName
func NewConnections(defaultName string, logger coreport.Logger, opts ...ConnectionsOption) *Connections {
	c := &Connections{
		defaultName:   defaultName,
		dbs:           make(map[string]*gorm.DB),
		queryTimeouts: make(map[string]time.Duration),
		morphKeyType:  domainschema.MorphKeyInt,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers a connection under the name. A positive queryTimeout bounds every
// statement run through the connection.
func (c *Connections) Add(name string, db *gorm.DB, queryTimeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dbs[name] = db
	c.queryTimeouts[name] = queryTimeout
}

// QueryTimeout returns the statement timeout of the named connection, zero when unbounded
func (c *Connections) QueryTimeout(name string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queryTimeouts[c.resolve(name)]
}

// DefaultName returns the name of the default connection
func (c *Connections) DefaultName() string {
	return c.defaultName
}

// IsDefault reports whether name selects the default connection
func (c *Connections) IsDefault(name string) bool {
	return name == "" || name == c.defaultName
}

// Connection returns the named connection
func (c *Connections) Connection(name string) (*gorm.DB, error) {
	if name == "" {
		name = c.defaultName
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	db, ok := c.dbs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownConnection, name)
	}
	return db, nil
}

// SchemaBuilder returns a schema builder on the named connection
func (c *Connections) SchemaBuilder(name string) (metamodel.SchemaBuilder, error) {
	db, err := c.Connection(name)
	if err != nil {
		return nil, err
	}
	return schema.NewBuilder(db, c.logger.With(map[string]any{"connection": c.resolve(name)}),
		schema.WithDefaultMorphKeyType(c.morphKeyType),
		schema.WithQueryTimeout(c.QueryTimeout(name)),
	), nil
}

// Names returns the registered connection names, sorted
func (c *Connections) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.dbs))
	for name := range c.dbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Connections) resolve(name string) string {
	if name == "" {
		return c.defaultName
	}
	return name
}
