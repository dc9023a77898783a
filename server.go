// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"os"
	"slices"

	"contactcheck-server/commons"
	"contactcheck-server/handlers"
	"contactcheck-server/refdata"
	"contactcheck-server/resolver"
	"contactcheck-server/routes"
	"contactcheck-server/validators"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg, err := commons.LoadConfig()
	if err != nil {
		commons.Logger.Fatalf("Invalid configuration: %v", err)
	}
	commons.InitLogger(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
		commons.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowCredentials: !slices.Contains(cfg.CORSAllowOrigins, "*"),
	}))
	e.Use(middleware.ContextTimeout(cfg.RequestTimeout))

	tables, err := refdata.Load(cfg.ReferenceDataPath)
	if err != nil {
		commons.Logger.Fatalf("Failed to load reference data: %v", err)
	}
	commons.Logger.Infof("Reference data loaded: %d disposable domains, %d providers, %d suspicious TLDs",
		tables.DisposableCount(), tables.ProviderCount(), len(tables.SuspiciousTLDs()))

	carriers, err := commons.LoadCarrierIndex(cfg.CarrierDataPath)
	if err != nil {
		commons.Logger.Fatalf("Failed to load carrier data: %v", err)
	}

	dnsOpts := []resolver.Option{resolver.WithTimeout(cfg.DNSTimeout)}
	if len(cfg.DNSServers) > 0 {
		dnsOpts = append(dnsOpts, resolver.WithServers(cfg.DNSServers))
	}
	dnsClient := resolver.New(dnsOpts...)
	commons.Logger.Infof("Using DNS servers %v with %s timeout", dnsClient.Servers(), cfg.DNSTimeout)

	emailValidator := validators.NewEmailValidator(dnsClient, tables, commons.Logger)
	phoneValidator := validators.NewPhoneValidator(validators.LibPhoneNumberPlan{}, validators.PhoneConfig{
		FallbackRegions: cfg.PhoneFallbackRegions,
		Locale:          cfg.PhoneLocale,
		Carriers:        carriers,
		Logger:          commons.Logger,
	})

	routes.RegisterRoutes(e, handlers.NewValidationHandler(emailValidator, phoneValidator))

	e.Logger.Fatal(e.Start(cfg.ListenAddr()))
}
