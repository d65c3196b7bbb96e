/*
 * This file is part of aarovia.
 *
 * aarovia is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * aarovia is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with aarovia.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TanujTS/aarovia-sub001/api"
	"github.com/TanujTS/aarovia-sub001/audit"
	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/TanujTS/aarovia-sub001/storage"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Nested keys map to environment variables with underscores, e.g. AAROVIA_AUTH_SECRET.
const (
	ConfInterface             = "interface"
	ConfPort                  = "port"
	ConfStore                 = "store"
	ConfDSN                   = "dsn"
	ConfAdmin                 = "admin"
	ConfStrictRecordOwnership = "strictRecordOwnership"
	ConfSeedFile              = "seed"
	ConfAuditFile             = "audit.file"
	ConfAuthSecret            = "auth.secret"
	ConfAuthIssuer            = "auth.issuer"
	ConfLogLevel              = "log.level"
	ConfLogFormat             = "log.format"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Engine describes a module: its commands, flags, lifecycle and HTTP routes.
type Engine struct {
	Name      string
	Cmd       *cobra.Command
	FlagSet   *pflag.FlagSet
	Configure func() error
	Start     func() error
	Shutdown  func() error
	Routes    func(router api.EchoRouter)
	// Middleware returns the request middleware the routes depend on.
	Middleware func() []echo.MiddlewareFunc
}

// Config is the resolved configuration of the access control engine.
type Config struct {
	Interface             string
	Port                  int
	Store                 string
	DSN                   string
	Admin                 string
	StrictRecordOwnership bool
	SeedFile              string
	AuditFile             string
	AuthSecret            string
	AuthIssuer            string
	LogLevel              string
	LogFormat             string
}

// Instance holds everything the access control engine creates on Configure.
type Instance struct {
	Config        Config
	AccessControl *pkg.AccessControl
	Bus           *pkg.EventBus
	Registry      *prometheus.Registry
	Validator     *api.TokenValidator
	Audit         *audit.JSONLStore
	// ReadOnly runs the engine on a detached copy of the store without audit trail, so nothing is persisted or
	// recorded. It must be set before Configure.
	ReadOnly bool

	store      pkg.Store
	configured bool
}

func logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "engine")
}

// NewAccessControlEngine creates the engine descriptor and the instance it manages.
func NewAccessControlEngine() (*Engine, *Instance) {
	instance := &Instance{}
	return &Engine{
		Name:      "AccessControl",
		Cmd:       cmd(instance),
		FlagSet:   flagSet(),
		Configure: instance.Configure,
		Start:     instance.Start,
		Shutdown:  instance.Shutdown,
		Routes: func(router api.EchoRouter) {
			api.RegisterHandlers(router, api.Wrapper{Ac: instance.AccessControl})
			router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(instance.Registry, promhttp.HandlerOpts{})))
		},
		Middleware: instance.Middleware,
	}, instance
}

func flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("access-control", pflag.ContinueOnError)
	flags.String(ConfStore, StoreMemory, "State store: memory or postgres")
	flags.String(ConfDSN, "", "PostgreSQL connection string, used with --store=postgres")
	flags.String(ConfAdmin, "", "Address that becomes admin when the store holds no admin")
	flags.Bool(ConfStrictRecordOwnership, false, "Only let the registering patient manage access to a record")
	flags.String(ConfSeedFile, "", "YAML file with roles, admins and emergency access to apply on start")
	flags.String(ConfAuditFile, "", "JSONL file that receives every access control event")
	flags.String(ConfAuthSecret, "", "HS256 secret for bearer tokens; mutations are refused without it")
	flags.String(ConfAuthIssuer, "", "Expected issuer of bearer tokens")
	flags.String(ConfLogLevel, "info", "Log level")
	flags.String(ConfLogFormat, "text", "Log format: text or json")
	return flags
}

func configFromViper() Config {
	return Config{
		Interface:             viper.GetString(ConfInterface),
		Port:                  viper.GetInt(ConfPort),
		Store:                 viper.GetString(ConfStore),
		DSN:                   viper.GetString(ConfDSN),
		Admin:                 viper.GetString(ConfAdmin),
		StrictRecordOwnership: viper.GetBool(ConfStrictRecordOwnership),
		SeedFile:              viper.GetString(ConfSeedFile),
		AuditFile:             viper.GetString(ConfAuditFile),
		AuthSecret:            viper.GetString(ConfAuthSecret),
		AuthIssuer:            viper.GetString(ConfAuthIssuer),
		LogLevel:              viper.GetString(ConfLogLevel),
		LogFormat:             viper.GetString(ConfLogFormat),
	}
}

// Configure reads the configuration and creates the engine with its store, event bus, audit trail and metrics.
// It is idempotent.
func (i *Instance) Configure() error {
	if i.configured {
		return nil
	}
	i.Config = configFromViper()
	if err := configureLogging(i.Config.LogLevel, i.Config.LogFormat); err != nil {
		return err
	}

	var initializer pkg.Address
	if i.Config.Admin != "" {
		var err error
		if initializer, err = pkg.ParseAddress(i.Config.Admin); err != nil {
			return fmt.Errorf("invalid %s: %w", ConfAdmin, err)
		}
	}

	switch strings.ToLower(i.Config.Store) {
	case "", StoreMemory:
		i.store = pkg.NewMemoryStore()
	case StorePostgres:
		if i.Config.DSN == "" {
			return fmt.Errorf("%s is required for the %s store", ConfDSN, StorePostgres)
		}
		gormStore, err := storage.Open(i.Config.DSN)
		if err != nil {
			return err
		}
		i.store = gormStore
	default:
		return fmt.Errorf("unknown store %q", i.Config.Store)
	}

	var seed *pkg.Seed
	if i.Config.SeedFile != "" {
		var err error
		if seed, err = pkg.ReadSeedFile(i.Config.SeedFile); err != nil {
			return err
		}
	}

	i.Bus = pkg.NewEventBus()
	if i.Config.AuditFile != "" && !i.ReadOnly {
		auditStore, err := audit.NewJSONLStore(i.Config.AuditFile)
		if err != nil {
			return fmt.Errorf("could not open audit file: %w", err)
		}
		i.Audit = auditStore
		i.Bus.Subscribe(auditStore.Handle)
	}

	i.Registry = prometheus.NewRegistry()
	i.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	i.AccessControl = pkg.NewAccessControl(pkg.AccessControlConfig{
		Initializer:           initializer,
		StrictRecordOwnership: i.Config.StrictRecordOwnership,
		Seed:                  seed,
	}, i.store, i.Bus)
	i.AccessControl.Metrics = pkg.NewMetrics(i.Registry)

	if i.Config.AuthSecret != "" {
		i.Validator = api.NewTokenValidator(i.Config.AuthSecret)
		i.Validator.Issuer = i.Config.AuthIssuer
	} else {
		logger().Warn("no auth secret configured, all mutations will be refused")
	}

	i.configured = true
	logger().Debugf("configured with %s store", i.Config.Store)
	return nil
}

// Start loads the state. An empty store gets the admin and the seed file, if any.
func (i *Instance) Start() error {
	if !i.configured {
		return errors.New("access control engine is not configured")
	}
	ctx := context.Background()
	if i.ReadOnly {
		detached, err := pkg.Detach(ctx, i.store)
		if err != nil {
			return fmt.Errorf("could not load access control state: %w", err)
		}
		i.AccessControl.Store = detached
	}
	return i.AccessControl.Start(ctx)
}

// Shutdown closes the audit file and the database connection.
func (i *Instance) Shutdown() error {
	var errs []error
	if i.AccessControl != nil {
		errs = append(errs, i.AccessControl.Shutdown())
	}
	if i.Audit != nil {
		errs = append(errs, i.Audit.Close())
	}
	if closer, ok := i.store.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

// Middleware returns the tracing middleware and, when a secret is configured, the bearer token middleware.
func (i *Instance) Middleware() []echo.MiddlewareFunc {
	middleware := []echo.MiddlewareFunc{api.Tracing(nil)}
	if i.Validator != nil {
		middleware = append(middleware, i.Validator.Middleware())
	}
	return middleware
}

func configureLogging(level, format string) error {
	if level != "" {
		l, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", ConfLogLevel, err)
		}
		logrus.SetLevel(l)
	}
	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid %s: %q", ConfLogFormat, format)
	}
	return nil
}
